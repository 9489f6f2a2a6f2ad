package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

// GoalService defines the interface for learning goal operations
type GoalService interface {
	CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*models.LearningGoal, error)
	GetGoalByID(ctx context.Context, id int64) (*models.LearningGoal, error)
	GetAllGoals(ctx context.Context, onlyIncomplete bool) ([]*models.LearningGoal, error)
	UpdateGoal(ctx context.Context, id int64, req *dto.UpdateGoalRequest) (*models.LearningGoal, error)
	CompleteGoal(ctx context.Context, id int64) error
	DeleteGoal(ctx context.Context, id int64) error
}

// goalServiceImpl implements the GoalService interface
type goalServiceImpl struct {
	goalStore   GoalStore
	courseStore CourseStore
}

// NewGoalService creates a new goal service instance
func NewGoalService(goalStore GoalStore, courseStore CourseStore) GoalService {
	return &goalServiceImpl{
		goalStore:   goalStore,
		courseStore: courseStore,
	}
}

func (s *goalServiceImpl) checkCourseRef(ctx context.Context, courseID *int64) error {
	if courseID == nil {
		return nil
	}

	exists, err := s.courseStore.CourseExists(ctx, *courseID)
	if err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// CreateGoal creates a new learning goal. An associated course, if given,
// must exist.
func (s *goalServiceImpl) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*models.LearningGoal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.checkCourseRef(ctx, req.CourseID); err != nil {
		return nil, err
	}

	goal := &models.LearningGoal{
		Title:       title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		CourseID:    req.CourseID,
	}

	if _, err := s.goalStore.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// GetGoalByID retrieves a goal by ID
func (s *goalServiceImpl) GetGoalByID(ctx context.Context, id int64) (*models.LearningGoal, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid goal ID", apperrors.ErrValidationFailed)
	}

	return s.goalStore.GetGoalByID(ctx, id)
}

// GetAllGoals retrieves goals, optionally only the incomplete ones.
func (s *goalServiceImpl) GetAllGoals(ctx context.Context, onlyIncomplete bool) ([]*models.LearningGoal, error) {
	goals, err := s.goalStore.GetAllGoals(ctx, onlyIncomplete)
	if err != nil {
		return nil, fmt.Errorf("error retrieving goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal applies a partial update to a goal. The completion flag is not
// part of the update surface; completion only moves through CompleteGoal and
// is never reversed.
func (s *goalServiceImpl) UpdateGoal(ctx context.Context, id int64, req *dto.UpdateGoalRequest) (*models.LearningGoal, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid goal ID", apperrors.ErrValidationFailed)
	}

	goal, err := s.goalStore.GetGoalByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		goal.Description = req.Description
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	if req.CourseID != nil {
		goal.CourseID = req.CourseID
	}

	if goal.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.checkCourseRef(ctx, goal.CourseID); err != nil {
		return nil, err
	}

	if err := s.goalStore.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// CompleteGoal marks a goal as completed. Completing an already-completed
// goal fails with a state conflict.
func (s *goalServiceImpl) CompleteGoal(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid goal ID", apperrors.ErrValidationFailed)
	}

	return s.goalStore.CompleteGoal(ctx, id)
}

// DeleteGoal deletes a goal by ID
func (s *goalServiceImpl) DeleteGoal(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid goal ID", apperrors.ErrValidationFailed)
	}

	return s.goalStore.DeleteGoal(ctx, id)
}
