package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var weeks int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				stats, err := a.analytics.GetOverallStats(ctx)
				if err != nil {
					return err
				}

				fmt.Println("Your Learning Statistics:")
				fmt.Println(strings.Repeat("=", 40))
				fmt.Printf("Total Courses: %d\n", stats.TotalCourses)
				fmt.Printf("Completed: %d\n", stats.CompletedCourses)
				fmt.Printf("In Progress: %d\n", stats.InProgressCourses)
				fmt.Printf("Not Started: %d\n", stats.NotStartedCourses)
				fmt.Printf("Total Study Hours: %.1f\n", stats.TotalStudyHours)
				fmt.Printf("Average Session Rating: %.1f/5\n", stats.AverageSessionRating)
				fmt.Printf("Study Streak: %d days\n", stats.StudyStreakDays)
				fmt.Println(strings.Repeat("=", 40))

				buckets, err := a.analytics.GetWeeklyProgress(ctx, weeks)
				if err != nil {
					return err
				}

				fmt.Println("\nWeekly Study Hours:")
				for _, bucket := range buckets {
					bar := strings.Repeat("#", int(bucket.Hours))
					fmt.Printf("%s: %.1fh %s\n", bucket.Label, bucket.Hours, bar)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&weeks, "weeks", "w", 0, "Number of trailing weeks (default from config)")

	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate a comprehensive progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				report, err := a.analytics.GenerateReport(ctx)
				if err != nil {
					return err
				}

				fmt.Println("Progress Report")
				fmt.Println(separator(40))
				fmt.Printf("Generated at: %s\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))
				fmt.Println()

				stats := report.Stats
				fmt.Printf("Total Study Hours: %.1f\n", stats.TotalStudyHours)
				fmt.Printf("Courses Completed: %d of %d\n", stats.CompletedCourses, stats.TotalCourses)
				fmt.Printf("Average Session Rating: %.1f/5\n", stats.AverageSessionRating)
				fmt.Printf("Current Study Streak: %d days\n", stats.StudyStreakDays)

				fmt.Println("\nWeekly Study Hours:")
				for _, bucket := range report.WeeklyProgress {
					bar := strings.Repeat("#", int(bucket.Hours))
					fmt.Printf("%s: %.1fh %s\n", bucket.Label, bucket.Hours, bar)
				}

				dist := report.DifficultyDistribution
				fmt.Println("\nCourse Difficulty:")
				fmt.Printf("Beginner (1-2): %d\n", dist.Beginner)
				fmt.Printf("Intermediate (3): %d\n", dist.Intermediate)
				fmt.Printf("Advanced (4-5): %d\n", dist.Advanced)

				if len(report.GoalDeadlines) > 0 {
					fmt.Println("\nUpcoming Goal Deadlines:")
					for _, d := range report.GoalDeadlines {
						if d.DaysUntilTarget < 0 {
							fmt.Printf("%s: overdue by %d days (%s)\n",
								d.Title, -d.DaysUntilTarget, d.TargetDate.Format("2006-01-02"))
						} else {
							fmt.Printf("%s: %d days left (%s)\n",
								d.Title, d.DaysUntilTarget, d.TargetDate.Format("2006-01-02"))
						}
					}
				}

				fmt.Println("\nReport generated successfully.")
				return nil
			})
		},
	}
}
