package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/deniz/studytrack/internal/app/models/dto"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage learning goals",
	}

	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalCompleteCmd())
	cmd.AddCommand(goalDeleteCmd())

	return cmd
}

func goalAddCmd() *cobra.Command {
	var (
		description string
		targetDate  string
		courseID    int64
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new learning goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &dto.CreateGoalRequest{Title: args[0]}
			if description != "" {
				req.Description = &description
			}
			if targetDate != "" {
				parsed, err := time.Parse("2006-01-02", targetDate)
				if err != nil {
					return fmt.Errorf("invalid date format %q, use YYYY-MM-DD", targetDate)
				}
				req.TargetDate = &parsed
			}
			if courseID > 0 {
				req.CourseID = &courseID
			}

			return withApp(func(ctx context.Context, a *app) error {
				goal, err := a.goals.CreateGoal(ctx, req)
				if err != nil {
					return err
				}

				fmt.Printf("Goal %q added with ID %d\n", goal.Title, goal.ID)
				if goal.TargetDate != nil {
					fmt.Printf("Target date: %s\n", goal.TargetDate.Format("2006-01-02"))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Goal description")
	cmd.Flags().StringVarP(&targetDate, "target-date", "t", "", "Target completion date (YYYY-MM-DD)")
	cmd.Flags().Int64VarP(&courseID, "course", "c", 0, "Associated course ID")

	return cmd
}

func goalListCmd() *cobra.Command {
	var onlyIncomplete bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List learning goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				goals, err := a.goals.GetAllGoals(ctx, onlyIncomplete)
				if err != nil {
					return err
				}

				if len(goals) == 0 {
					fmt.Println("No goals found.")
					return nil
				}

				fmt.Println("Learning Goals:")
				fmt.Println(separator(60))
				for _, goal := range goals {
					status := "open"
					if goal.IsCompleted {
						status = "completed"
					}
					fmt.Printf("ID: %d\n", goal.ID)
					fmt.Printf("Title: %s\n", goal.Title)
					fmt.Printf("Status: %s\n", status)
					if goal.TargetDate != nil {
						fmt.Printf("Target date: %s\n", goal.TargetDate.Format("2006-01-02"))
					}
					if goal.Description != nil {
						fmt.Printf("Description: %s\n", *goal.Description)
					}
					fmt.Println(separator(60))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&onlyIncomplete, "incomplete", "i", false, "Show only incomplete goals")

	return cmd
}

func goalCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a goal as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal ID %q", args[0])
			}

			return withApp(func(ctx context.Context, a *app) error {
				if err := a.goals.CompleteGoal(ctx, id); err != nil {
					return err
				}
				fmt.Printf("Goal %d completed. Well done!\n", id)
				return nil
			})
		},
	}
}

func goalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal ID %q", args[0])
			}

			return withApp(func(ctx context.Context, a *app) error {
				if err := a.goals.DeleteGoal(ctx, id); err != nil {
					return err
				}
				fmt.Printf("Goal %d deleted\n", id)
				return nil
			})
		},
	}
}
