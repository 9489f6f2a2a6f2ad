package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	GetCourseProgress(ctx context.Context, id int64) (*dto.CourseProgressResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseStore  CourseStore
	sessionStore SessionStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore, sessionStore SessionStore) CourseService {
	return &courseServiceImpl{
		courseStore:  courseStore,
		sessionStore: sessionStore,
	}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.DifficultyLevel < models.MinDifficulty || course.DifficultyLevel > models.MaxDifficulty {
		return fmt.Errorf("%w: difficulty level must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinDifficulty, models.MaxDifficulty)
	}

	if course.DurationHours < 0 {
		return fmt.Errorf("%w: duration hours cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationHours:   req.DurationHours,
		DifficultyLevel: req.DifficultyLevel,
		Category:        req.Category,
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}

	if _, err := s.courseStore.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseStore.GetCourseByID(ctx, id)
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseStore.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse applies a partial update: only supplied fields replace the
// stored ones, and the merged course is re-validated as a whole.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseStore.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.DurationHours != nil {
		course.DurationHours = *req.DurationHours
	}
	if req.DifficultyLevel != nil {
		course.DifficultyLevel = *req.DifficultyLevel
	}
	if req.Category != nil {
		course.Category = req.Category
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courseStore.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course, its sessions, and clears goal references.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseStore.DeleteCourse(ctx, id)
}

// GetCourseProgress returns the course with its accumulated study time and
// completion status. Study hours are recomputed from closed sessions on every
// read; no denormalized total exists to drift.
func (s *courseServiceImpl) GetCourseProgress(ctx context.Context, id int64) (*dto.CourseProgressResponse, error) {
	course, err := s.courseStore.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	minutes, err := s.sessionStore.SumClosedMinutesByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error computing course study time: %w", err)
	}

	closed, err := s.sessionStore.CountClosedByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting course sessions: %w", err)
	}

	studiedHours := minutes / 60.0

	return &dto.CourseProgressResponse{
		CourseID:     course.ID,
		Name:         course.Name,
		TargetHours:  course.DurationHours,
		StudiedHours: studiedHours,
		Status:       courseStatus(closed, studiedHours, course.DurationHours),
	}, nil
}
