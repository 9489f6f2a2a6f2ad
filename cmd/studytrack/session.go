package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage study sessions",
	}

	cmd.AddCommand(sessionStartCmd())
	cmd.AddCommand(sessionEndCmd())
	cmd.AddCommand(sessionListCmd())

	return cmd
}

func sessionStartCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "start [course-id]",
		Short: "Start a new study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid course ID %q", args[0])
			}

			return withApp(func(ctx context.Context, a *app) error {
				var notesPtr *string
				if notes != "" {
					notesPtr = &notes
				}

				session, err := a.sessions.StartSession(ctx, courseID, notesPtr)
				if err != nil {
					return err
				}

				fmt.Printf("Study session started (ID %d)\n", session.ID)
				fmt.Println("Timer running. Use 'session end' when you're done.")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes about the study session")

	return cmd
}

func sessionEndCmd() *cobra.Command {
	var (
		rating int
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "end [session-id]",
		Short: "End a study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session ID %q", args[0])
			}

			return withApp(func(ctx context.Context, a *app) error {
				var notesPtr *string
				if notes != "" {
					notesPtr = &notes
				}

				closed, err := a.sessions.EndSession(ctx, sessionID, rating, notesPtr)
				if err != nil {
					return err
				}

				fmt.Printf("Study session %d ended after %d minutes\n",
					closed.SessionID, closed.DurationMinutes)
				fmt.Printf("Rating: %d/5\n", closed.Rating)
				fmt.Println("Great job studying!")
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Session rating 1-5")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes to replace the ones set at start")
	cmd.MarkFlagRequired("rating")

	return cmd
}

func sessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [course-id]",
		Short: "List the sessions of a course, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid course ID %q", args[0])
			}

			return withApp(func(ctx context.Context, a *app) error {
				sessions, err := a.sessions.GetSessionsByCourse(ctx, courseID)
				if err != nil {
					return err
				}

				if len(sessions) == 0 {
					fmt.Println("No sessions recorded for this course yet.")
					return nil
				}

				fmt.Println("Study Sessions:")
				fmt.Println(separator(60))
				for _, s := range sessions {
					fmt.Printf("ID: %d\n", s.ID)
					fmt.Printf("Started: %s\n", s.StartTime.Format("2006-01-02 15:04"))
					if s.EndTime != nil {
						fmt.Printf("Duration: %d minutes\n", s.DurationMinutes())
						if s.Rating != nil {
							fmt.Printf("Rating: %d/5\n", *s.Rating)
						}
					} else {
						fmt.Println("Status: still open")
					}
					if s.Notes != nil && *s.Notes != "" {
						fmt.Printf("Notes: %s\n", *s.Notes)
					}
					fmt.Println(separator(60))
				}
				return nil
			})
		},
	}
}
