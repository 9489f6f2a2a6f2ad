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

func setupGoalService(t *testing.T) (GoalService, *fakeGoalStore, *fakeCourseStore) {
	t.Helper()

	goalStore := newFakeGoalStore()
	courseStore := newFakeCourseStore()
	return NewGoalService(goalStore, courseStore), goalStore, courseStore
}

func TestCreateGoal(t *testing.T) {
	svc, _, courseStore := setupGoalService(t)

	courseID, err := courseStore.CreateCourse(context.Background(), &models.Course{
		Name:            "Python Fundamentals",
		DifficultyLevel: 2,
	})
	require.NoError(t, err)

	target := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	goal, err := svc.CreateGoal(context.Background(), &dto.CreateGoalRequest{
		Title:      "Complete Python Fundamentals",
		TargetDate: &target,
		CourseID:   &courseID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), goal.ID)
	assert.False(t, goal.IsCompleted)
	assert.Equal(t, courseID, *goal.CourseID)
}

func TestCreateGoalValidation(t *testing.T) {
	svc, _, _ := setupGoalService(t)

	_, err := svc.CreateGoal(context.Background(), &dto.CreateGoalRequest{Title: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	missing := int64(99)
	_, err = svc.CreateGoal(context.Background(), &dto.CreateGoalRequest{
		Title:    "Orphan goal",
		CourseID: &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCompleteGoalOnce(t *testing.T) {
	svc, goalStore, _ := setupGoalService(t)

	goal, err := svc.CreateGoal(context.Background(), &dto.CreateGoalRequest{Title: "Read the book"})
	require.NoError(t, err)

	require.NoError(t, svc.CompleteGoal(context.Background(), goal.ID))

	// Completion is one-way; a second attempt is a state conflict
	err = svc.CompleteGoal(context.Background(), goal.ID)
	assert.ErrorIs(t, err, apperrors.ErrGoalAlreadyCompleted)
	assert.ErrorIs(t, apperrors.Kind(err), apperrors.ErrStateConflict)

	stored, err := goalStore.GetGoalByID(context.Background(), goal.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted)
}

func TestUpdateGoalCannotUncomplete(t *testing.T) {
	svc, goalStore, _ := setupGoalService(t)

	goal, err := svc.CreateGoal(context.Background(), &dto.CreateGoalRequest{Title: "Ship it"})
	require.NoError(t, err)
	require.NoError(t, svc.CompleteGoal(context.Background(), goal.ID))

	newTitle := "Ship it properly"
	updated, err := svc.UpdateGoal(context.Background(), goal.ID, &dto.UpdateGoalRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Ship it properly", updated.Title)

	stored, err := goalStore.GetGoalByID(context.Background(), goal.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted)
}

func TestGetAllGoalsIncompleteFilter(t *testing.T) {
	svc, _, _ := setupGoalService(t)

	open, err := svc.CreateGoal(context.Background(), &dto.CreateGoalRequest{Title: "Open goal"})
	require.NoError(t, err)
	done, err := svc.CreateGoal(context.Background(), &dto.CreateGoalRequest{Title: "Done goal"})
	require.NoError(t, err)
	require.NoError(t, svc.CompleteGoal(context.Background(), done.ID))

	all, err := svc.GetAllGoals(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	incomplete, err := svc.GetAllGoals(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.Equal(t, open.ID, incomplete[0].ID)
}

func TestDeleteGoalNotFound(t *testing.T) {
	svc, _, _ := setupGoalService(t)

	err := svc.DeleteGoal(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrGoalNotFound)
}
