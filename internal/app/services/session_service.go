package services

import (
	"context"
	"fmt"
	"time"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

// SessionService governs the study session lifecycle: a session is created
// open and transitions exactly once to closed. Closing an already-closed
// session is rejected, never silently repeated.
type SessionService interface {
	StartSession(ctx context.Context, courseID int64, notes *string) (*models.StudySession, error)
	EndSession(ctx context.Context, sessionID int64, rating int, notes *string) (*dto.SessionClosedResponse, error)
	GetSessionByID(ctx context.Context, id int64) (*models.StudySession, error)
	GetSessionsByCourse(ctx context.Context, courseID int64) ([]*models.StudySession, error)
	UpdateSessionNotes(ctx context.Context, id int64, notes *string) error
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessionStore SessionStore
	courseStore  CourseStore
	now          func() time.Time
}

// NewSessionService creates a new session service instance. The clock is
// injectable for tests; pass nil to use time.Now.
func NewSessionService(sessionStore SessionStore, courseStore CourseStore, now func() time.Time) SessionService {
	if now == nil {
		now = time.Now
	}
	return &sessionServiceImpl{
		sessionStore: sessionStore,
		courseStore:  courseStore,
		now:          now,
	}
}

// StartSession opens a new session for an existing course. Start time is the
// current instant in UTC.
func (s *sessionServiceImpl) StartSession(ctx context.Context, courseID int64, notes *string) (*models.StudySession, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	exists, err := s.courseStore.CourseExists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	session := &models.StudySession{
		CourseID:  courseID,
		StartTime: s.now().UTC(),
		Notes:     notes,
	}

	if _, err := s.sessionStore.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// EndSession closes an open session, setting end time and rating, and
// returns the computed duration in whole minutes (rounded down). The store's
// conditional update guarantees at most one close succeeds per session.
func (s *sessionServiceImpl) EndSession(ctx context.Context, sessionID int64, rating int, notes *string) (*dto.SessionClosedResponse, error) {
	if sessionID <= 0 {
		return nil, fmt.Errorf("%w: invalid session ID", apperrors.ErrValidationFailed)
	}

	if rating < models.MinRating || rating > models.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			apperrors.ErrValidationFailed, models.MinRating, models.MaxRating)
	}

	endTime := s.now().UTC()

	if err := s.sessionStore.CloseSession(ctx, sessionID, endTime, rating, notes); err != nil {
		return nil, err
	}

	session, err := s.sessionStore.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error reloading closed session: %w", err)
	}

	return &dto.SessionClosedResponse{
		SessionID:       session.ID,
		CourseID:        session.CourseID,
		StartTime:       session.StartTime,
		EndTime:         *session.EndTime,
		DurationMinutes: session.DurationMinutes(),
		Rating:          *session.Rating,
	}, nil
}

// GetSessionByID retrieves a session by ID
func (s *sessionServiceImpl) GetSessionByID(ctx context.Context, id int64) (*models.StudySession, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid session ID", apperrors.ErrValidationFailed)
	}

	return s.sessionStore.GetSessionByID(ctx, id)
}

// GetSessionsByCourse retrieves all sessions of an existing course.
func (s *sessionServiceImpl) GetSessionsByCourse(ctx context.Context, courseID int64) ([]*models.StudySession, error) {
	exists, err := s.courseStore.CourseExists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	return s.sessionStore.GetSessionsByCourse(ctx, courseID)
}

// UpdateSessionNotes replaces a session's notes. Notes are the only field
// mutable outside the open-to-closed transition; end time and rating only
// move through EndSession.
func (s *sessionServiceImpl) UpdateSessionNotes(ctx context.Context, id int64, notes *string) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid session ID", apperrors.ErrValidationFailed)
	}

	return s.sessionStore.UpdateSessionNotes(ctx, id, notes)
}
