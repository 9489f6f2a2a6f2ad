package services

import (
	"context"
	"fmt"
	"time"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

// AnalyticsService is the read side of the tracker: it aggregates the
// persisted courses, sessions, and goals into progress views. It writes
// nothing and keeps no state of its own.
type AnalyticsService interface {
	GetOverallStats(ctx context.Context) (*dto.OverallStats, error)
	GetWeeklyProgress(ctx context.Context, weeks int) ([]dto.WeekBucket, error)
	GetDifficultyDistribution(ctx context.Context) (*dto.DifficultyDistribution, error)
	GetGoalDeadlines(ctx context.Context) ([]dto.GoalDeadline, error)
	GenerateReport(ctx context.Context) (*dto.ProgressReport, error)
}

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	courseStore  CourseStore
	sessionStore SessionStore
	goalStore    GoalStore
	defaultWeeks int
	now          func() time.Time
}

// NewAnalyticsService creates a new analytics service instance. defaultWeeks
// is the trailing window used when a caller passes weeks <= 0; the clock is
// injectable for tests (nil means time.Now).
func NewAnalyticsService(courseStore CourseStore, sessionStore SessionStore, goalStore GoalStore, defaultWeeks int, now func() time.Time) AnalyticsService {
	if defaultWeeks < 1 {
		defaultWeeks = 4
	}
	if now == nil {
		now = time.Now
	}
	return &analyticsServiceImpl{
		courseStore:  courseStore,
		sessionStore: sessionStore,
		goalStore:    goalStore,
		defaultWeeks: defaultWeeks,
		now:          now,
	}
}

// GetOverallStats aggregates every course and closed session into the
// top-level progress summary.
func (s *analyticsServiceImpl) GetOverallStats(ctx context.Context) (*dto.OverallStats, error) {
	courses, err := s.courseStore.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading courses: %w", err)
	}

	sessions, err := s.sessionStore.GetClosedSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading closed sessions: %w", err)
	}

	byCourse := make(map[int64][]*models.StudySession)
	for _, session := range sessions {
		byCourse[session.CourseID] = append(byCourse[session.CourseID], session)
	}

	stats := &dto.OverallStats{
		TotalCourses:         len(courses),
		TotalStudyHours:      totalStudyHours(sessions),
		AverageSessionRating: averageRating(sessions),
		StudyStreakDays:      studyStreak(sessions, s.now()),
	}

	for _, course := range courses {
		courseSessions := byCourse[course.ID]
		switch courseStatus(len(courseSessions), totalStudyHours(courseSessions), course.DurationHours) {
		case CourseStatusCompleted:
			stats.CompletedCourses++
		case CourseStatusInProgress:
			stats.InProgressCourses++
		default:
			stats.NotStartedCourses++
		}
	}

	return stats, nil
}

// GetWeeklyProgress buckets closed-session hours into the trailing `weeks`
// ISO weeks. Passing weeks <= 0 selects the configured default. The result
// always contains exactly `weeks` entries, zero-filled where no sessions
// fall.
func (s *analyticsServiceImpl) GetWeeklyProgress(ctx context.Context, weeks int) ([]dto.WeekBucket, error) {
	if weeks <= 0 {
		weeks = s.defaultWeeks
	}
	if weeks > 104 {
		return nil, fmt.Errorf("%w: weeks must be at most 104", apperrors.ErrValidationFailed)
	}

	sessions, err := s.sessionStore.GetClosedSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading closed sessions: %w", err)
	}

	return weeklyBuckets(sessions, weeks, s.now()), nil
}

// GetDifficultyDistribution counts courses per difficulty band.
func (s *analyticsServiceImpl) GetDifficultyDistribution(ctx context.Context) (*dto.DifficultyDistribution, error) {
	courses, err := s.courseStore.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading courses: %w", err)
	}

	dist := difficultyBands(courses)
	return &dist, nil
}

// GetGoalDeadlines returns the day countdown for every incomplete goal that
// has a target date. Overdue goals carry a negative count.
func (s *analyticsServiceImpl) GetGoalDeadlines(ctx context.Context) ([]dto.GoalDeadline, error) {
	goals, err := s.goalStore.GetAllGoals(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("error loading goals: %w", err)
	}

	now := s.now()
	deadlines := []dto.GoalDeadline{}
	for _, goal := range goals {
		if goal.TargetDate == nil {
			continue
		}
		deadlines = append(deadlines, dto.GoalDeadline{
			GoalID:          goal.ID,
			Title:           goal.Title,
			TargetDate:      *goal.TargetDate,
			DaysUntilTarget: daysUntil(*goal.TargetDate, now),
		})
	}

	return deadlines, nil
}

// GenerateReport composes every analytics view into one snapshot. Reads are
// not wrapped in a transaction; eventual-within-request consistency is
// acceptable for a human-paced tracker.
func (s *analyticsServiceImpl) GenerateReport(ctx context.Context) (*dto.ProgressReport, error) {
	stats, err := s.GetOverallStats(ctx)
	if err != nil {
		return nil, err
	}

	weekly, err := s.GetWeeklyProgress(ctx, s.defaultWeeks)
	if err != nil {
		return nil, err
	}

	dist, err := s.GetDifficultyDistribution(ctx)
	if err != nil {
		return nil, err
	}

	deadlines, err := s.GetGoalDeadlines(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ProgressReport{
		Stats:                  *stats,
		WeeklyProgress:         weekly,
		DifficultyDistribution: *dist,
		GoalDeadlines:          deadlines,
		GeneratedAt:            s.now().UTC(),
	}, nil
}
