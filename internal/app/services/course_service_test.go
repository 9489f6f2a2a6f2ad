package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

func setupCourseService(t *testing.T) (CourseService, *fakeCourseStore, *fakeSessionStore) {
	t.Helper()

	courseStore := newFakeCourseStore()
	sessionStore := newFakeSessionStore()
	return NewCourseService(courseStore, sessionStore), courseStore, sessionStore
}

func TestCreateCourse(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:            "  Python Fundamentals  ",
		Description:     strPtr("Learn the basics"),
		DurationHours:   40,
		DifficultyLevel: 2,
		Category:        strPtr("Programming"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), course.ID)
	assert.Equal(t, "Python Fundamentals", course.Name)
	assert.Equal(t, 40, course.DurationHours)
	assert.True(t, course.IsBeginnerFriendly())
}

func TestCreateCourseValidation(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	tests := []struct {
		name string
		req  *dto.CreateCourseRequest
	}{
		{"empty name", &dto.CreateCourseRequest{Name: "   ", DifficultyLevel: 3}},
		{"difficulty too low", &dto.CreateCourseRequest{Name: "Go", DifficultyLevel: 0}},
		{"difficulty too high", &dto.CreateCourseRequest{Name: "Go", DifficultyLevel: 6}},
		{"negative duration", &dto.CreateCourseRequest{Name: "Go", DifficultyLevel: 3, DurationHours: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCourse(context.Background(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestUpdateCourseMergesFields(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:            "Go Basics",
		DurationHours:   20,
		DifficultyLevel: 2,
	})
	require.NoError(t, err)

	newDuration := 30
	updated, err := svc.UpdateCourse(context.Background(), course.ID, &dto.UpdateCourseRequest{
		DurationHours: &newDuration,
	})
	require.NoError(t, err)

	// Untouched fields survive the partial update
	assert.Equal(t, "Go Basics", updated.Name)
	assert.Equal(t, 30, updated.DurationHours)
	assert.Equal(t, 2, updated.DifficultyLevel)
}

func TestUpdateCourseRevalidates(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:            "Go Basics",
		DifficultyLevel: 2,
	})
	require.NoError(t, err)

	badDifficulty := 9
	_, err = svc.UpdateCourse(context.Background(), course.ID, &dto.UpdateCourseRequest{
		DifficultyLevel: &badDifficulty,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	name := "Missing"
	_, err := svc.UpdateCourse(context.Background(), 7, &dto.UpdateCourseRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCourseProgress(t *testing.T) {
	svc, _, sessionStore := setupCourseService(t)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:            "Python Fundamentals",
		DurationHours:   2,
		DifficultyLevel: 2,
	})
	require.NoError(t, err)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	_, err = sessionStore.CreateSession(context.Background(), &models.StudySession{
		CourseID:  course.ID,
		StartTime: start,
		EndTime:   &end,
	})
	require.NoError(t, err)

	progress, err := svc.GetCourseProgress(context.Background(), course.ID)
	require.NoError(t, err)

	assert.Equal(t, course.ID, progress.CourseID)
	assert.Equal(t, 2, progress.TargetHours)
	assert.InDelta(t, 1.5, progress.StudiedHours, 0.001)
	assert.Equal(t, CourseStatusInProgress, progress.Status)

	// Another 30 minutes pushes it to completed
	start2 := end
	end2 := start2.Add(30 * time.Minute)
	_, err = sessionStore.CreateSession(context.Background(), &models.StudySession{
		CourseID:  course.ID,
		StartTime: start2,
		EndTime:   &end2,
	})
	require.NoError(t, err)

	progress, err = svc.GetCourseProgress(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, CourseStatusCompleted, progress.Status)
}

func TestGetCourseProgressNotStarted(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:            "Untouched",
		DurationHours:   0,
		DifficultyLevel: 1,
	})
	require.NoError(t, err)

	progress, err := svc.GetCourseProgress(context.Background(), course.ID)
	require.NoError(t, err)

	// Zero target does not mean completed while nothing was studied
	assert.Equal(t, CourseStatusNotStarted, progress.Status)
	assert.Zero(t, progress.StudiedHours)
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	err := svc.DeleteCourse(context.Background(), 123)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
