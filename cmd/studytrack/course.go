package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deniz/studytrack/internal/app/models/dto"
)

func courseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(courseAddCmd())
	cmd.AddCommand(courseListCmd())
	cmd.AddCommand(courseShowCmd())
	cmd.AddCommand(courseDeleteCmd())

	return cmd
}

func courseAddCmd() *cobra.Command {
	var (
		description string
		duration    int
		difficulty  int
		category    string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new course to track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				req := &dto.CreateCourseRequest{
					Name:            args[0],
					DurationHours:   duration,
					DifficultyLevel: difficulty,
				}
				if description != "" {
					req.Description = &description
				}
				if category != "" {
					req.Category = &category
				}

				course, err := a.courses.CreateCourse(ctx, req)
				if err != nil {
					return err
				}

				fmt.Printf("Course %q added with ID %d\n", course.Name, course.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Course description")
	cmd.Flags().IntVar(&duration, "duration", 0, "Expected duration in hours")
	cmd.Flags().IntVar(&difficulty, "difficulty", 3, "Difficulty level 1-5")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Course category")

	return cmd
}

func courseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				courses, err := a.courses.GetAllCourses(ctx)
				if err != nil {
					return err
				}

				if len(courses) == 0 {
					fmt.Println("No courses found. Add some courses first!")
					return nil
				}

				fmt.Println("Your Courses:")
				fmt.Println(separator(60))
				for _, course := range courses {
					fmt.Printf("ID: %d\n", course.ID)
					fmt.Printf("Name: %s\n", course.Name)
					if course.Category != nil {
						fmt.Printf("Category: %s\n", *course.Category)
					}
					fmt.Printf("Duration: %d hours\n", course.DurationHours)
					fmt.Printf("Difficulty: %s (%d/5)\n",
						strings.Repeat("*", course.DifficultyLevel), course.DifficultyLevel)
					if course.Description != nil {
						fmt.Printf("Description: %s\n", *course.Description)
					}
					fmt.Println(separator(60))
				}
				return nil
			})
		},
	}
}

func courseShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a course with its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid course ID %q", args[0])
			}

			return withApp(func(ctx context.Context, a *app) error {
				course, err := a.courses.GetCourseByID(ctx, id)
				if err != nil {
					return err
				}

				progress, err := a.courses.GetCourseProgress(ctx, id)
				if err != nil {
					return err
				}

				fmt.Printf("Course: %s (ID %d)\n", course.Name, course.ID)
				if course.Category != nil {
					fmt.Printf("Category: %s\n", *course.Category)
				}
				fmt.Printf("Difficulty: %d/5\n", course.DifficultyLevel)
				if course.Description != nil {
					fmt.Printf("Description: %s\n", *course.Description)
				}
				fmt.Println(separator(40))
				fmt.Printf("Studied: %.1f / %d hours\n", progress.StudiedHours, progress.TargetHours)
				fmt.Printf("Status: %s\n", progress.Status)
				return nil
			})
		},
	}
}

func courseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a course and its study sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid course ID %q", args[0])
			}

			return withApp(func(ctx context.Context, a *app) error {
				if err := a.courses.DeleteCourse(ctx, id); err != nil {
					return err
				}
				fmt.Printf("Course %d deleted\n", id)
				return nil
			})
		},
	}
}
