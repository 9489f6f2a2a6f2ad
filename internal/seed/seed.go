package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// CreateSampleData inserts a starter set of courses and goals on an empty
// database. It runs on every startup but is a no-op once any course exists.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := repositories.NewCourseRepository(dbPool)
	goalRepo := repositories.NewGoalRepository(dbPool)

	existing, err := courseRepo.GetAllCourses(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("courses", len(existing)).Msg("Database already populated, skipping sample data")
		return nil
	}

	lgr.Info().Msg("Empty database, creating sample data...")

	courses := []*models.Course{
		{
			Name:            "Python Fundamentals",
			Description:     strPtr("Learn the basics of Python programming including variables, functions, and control structures."),
			DurationHours:   40,
			DifficultyLevel: 2,
			Category:        strPtr("Programming"),
		},
		{
			Name:            "Web Development with Flask",
			Description:     strPtr("Build web applications using the Flask framework."),
			DurationHours:   30,
			DifficultyLevel: 3,
			Category:        strPtr("Web Development"),
		},
		{
			Name:            "Data Analysis with Pandas",
			Description:     strPtr("Learn to analyze data using the pandas library."),
			DurationHours:   25,
			DifficultyLevel: 3,
			Category:        strPtr("Data Science"),
		},
		{
			Name:            "Introduction to Machine Learning",
			Description:     strPtr("Basic concepts and algorithms in machine learning."),
			DurationHours:   50,
			DifficultyLevel: 4,
			Category:        strPtr("Data Science"),
		},
		{
			Name:            "Git and Version Control",
			Description:     strPtr("Learn version control with Git and GitHub."),
			DurationHours:   15,
			DifficultyLevel: 2,
			Category:        strPtr("Tools"),
		},
	}

	byName := make(map[string]int64, len(courses))
	for _, course := range courses {
		id, err := courseRepo.CreateCourse(ctx, course)
		if err != nil {
			lgr.Error().Err(err).Str("course", course.Name).Msg("Error creating sample course")
			return err
		}
		byName[course.Name] = id
	}

	pythonID := byName["Python Fundamentals"]
	flaskID := byName["Web Development with Flask"]

	goals := []*models.LearningGoal{
		{
			Title:       "Complete Python Fundamentals",
			Description: strPtr("Finish all modules in the Python Fundamentals course"),
			TargetDate:  datePtr(2026, time.December, 31),
			CourseID:    &pythonID,
		},
		{
			Title:       "Build Your First Web App",
			Description: strPtr("Create a complete web application using Flask"),
			TargetDate:  datePtr(2026, time.November, 30),
			CourseID:    &flaskID,
		},
		{
			Title:       "Learn Data Visualization",
			Description: strPtr("Master matplotlib and plotly for data visualization"),
			TargetDate:  datePtr(2026, time.October, 15),
		},
	}

	for _, goal := range goals {
		if _, err := goalRepo.CreateGoal(ctx, goal); err != nil {
			lgr.Error().Err(err).Str("goal", goal.Title).Msg("Error creating sample goal")
			return err
		}
	}

	lgr.Info().Int("courses", len(courses)).Int("goals", len(goals)).Msg("Sample data created")
	return nil
}
