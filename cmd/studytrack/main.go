package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deniz/studytrack/internal/app/repositories"
	"github.com/deniz/studytrack/internal/app/services"
	"github.com/deniz/studytrack/internal/config"
	"github.com/deniz/studytrack/internal/db"
	"github.com/deniz/studytrack/internal/pkg/logger"
)

var Version = "dev"

// configPath can be overridden with the global --config flag.
var configPath = filepath.Join("configs", "config.yaml")

// app bundles the services a CLI command needs, plus the pool teardown.
type app struct {
	courses   services.CourseService
	sessions  services.SessionService
	goals     services.GoalService
	analytics services.AnalyticsService
	close     func()
}

// openApp loads configuration, connects to the database, and wires the
// service layer the same way the API server does.
func openApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Keep command output clean; only warnings and errors reach the terminal
	logger.Configure(logger.Config{Level: logger.WarnLevel, Pretty: true})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos := repositories.NewRepositories(database.Pool)

	return &app{
		courses:  services.NewCourseService(repos.CourseRepository, repos.SessionRepository),
		sessions: services.NewSessionService(repos.SessionRepository, repos.CourseRepository, nil),
		goals:    services.NewGoalService(repos.GoalRepository, repos.CourseRepository),
		analytics: services.NewAnalyticsService(
			repos.CourseRepository,
			repos.SessionRepository,
			repos.GoalRepository,
			cfg.Analytics.DefaultWeeks,
			nil,
		),
		close: database.Close,
	}, nil
}

// withApp opens the application, runs fn, and tears the pool down.
func withApp(fn func(ctx context.Context, a *app) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	return fn(context.Background(), a)
}

func separator(width int) string {
	return strings.Repeat("-", width)
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "studytrack",
		Short:   "StudyTrack - track courses, study sessions, and learning goals",
		Version: Version,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", configPath, "Path to the config file")

	rootCmd.AddCommand(courseCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(goalCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
