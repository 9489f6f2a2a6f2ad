package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

// fixedClock returns a clock stuck at t; advance it by swapping the pointer.
func fixedClock(t time.Time) (func() time.Time, *time.Time) {
	current := t
	return func() time.Time { return current }, &current
}

func setupSessionService(t *testing.T, start time.Time) (SessionService, *fakeCourseStore, *fakeSessionStore, *time.Time) {
	t.Helper()

	courseStore := newFakeCourseStore()
	sessionStore := newFakeSessionStore()
	clock, now := fixedClock(start)

	svc := NewSessionService(sessionStore, courseStore, clock)
	return svc, courseStore, sessionStore, now
}

func createCourse(t *testing.T, store *fakeCourseStore, name string) int64 {
	t.Helper()

	id, err := store.CreateCourse(context.Background(), &models.Course{
		Name:            name,
		DurationHours:   40,
		DifficultyLevel: 2,
	})
	require.NoError(t, err)
	return id
}

func TestStartSession(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, courseStore, _, _ := setupSessionService(t, start)
	courseID := createCourse(t, courseStore, "Python Basics")

	session, err := svc.StartSession(context.Background(), courseID, strPtr("first chapter"))
	require.NoError(t, err)

	assert.Equal(t, courseID, session.CourseID)
	assert.Equal(t, start, session.StartTime)
	assert.Nil(t, session.EndTime)
	assert.Nil(t, session.Rating)
	assert.False(t, session.IsClosed())
}

func TestStartSessionUnknownCourse(t *testing.T) {
	svc, _, _, _ := setupSessionService(t, time.Now())

	_, err := svc.StartSession(context.Background(), 42, nil)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEndSessionComputesDuration(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, courseStore, _, now := setupSessionService(t, start)
	courseID := createCourse(t, courseStore, "Python Basics")

	session, err := svc.StartSession(context.Background(), courseID, nil)
	require.NoError(t, err)

	// 90 minutes and 59 seconds later; duration rounds down to whole minutes
	*now = start.Add(90*time.Minute + 59*time.Second)

	closed, err := svc.EndSession(context.Background(), session.ID, 4, strPtr("productive"))
	require.NoError(t, err)

	assert.Equal(t, session.ID, closed.SessionID)
	assert.Equal(t, 90, closed.DurationMinutes)
	assert.Equal(t, 4, closed.Rating)
	assert.Equal(t, start, closed.StartTime)
}

func TestEndSessionTwice(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, courseStore, sessionStore, now := setupSessionService(t, start)
	courseID := createCourse(t, courseStore, "Python Basics")

	session, err := svc.StartSession(context.Background(), courseID, nil)
	require.NoError(t, err)

	*now = start.Add(30 * time.Minute)
	first, err := svc.EndSession(context.Background(), session.ID, 5, nil)
	require.NoError(t, err)

	// The second close loses and the stored record keeps the first outcome
	*now = start.Add(2 * time.Hour)
	_, err = svc.EndSession(context.Background(), session.ID, 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrSessionAlreadyClosed)
	assert.ErrorIs(t, apperrors.Kind(err), apperrors.ErrStateConflict)

	stored, err := sessionStore.GetSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, first.EndTime, *stored.EndTime)
	assert.Equal(t, 5, *stored.Rating)
}

func TestEndSessionRatingRange(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, courseStore, _, now := setupSessionService(t, start)
	courseID := createCourse(t, courseStore, "Python Basics")

	session, err := svc.StartSession(context.Background(), courseID, nil)
	require.NoError(t, err)

	*now = start.Add(time.Hour)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.EndSession(context.Background(), session.ID, rating, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestEndSessionClockSkew(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, courseStore, _, now := setupSessionService(t, start)
	courseID := createCourse(t, courseStore, "Python Basics")

	session, err := svc.StartSession(context.Background(), courseID, nil)
	require.NoError(t, err)

	// Clock went backward between start and end
	*now = start.Add(-time.Minute)

	_, err = svc.EndSession(context.Background(), session.ID, 3, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// The session is still open and can be closed once the clock recovers
	*now = start.Add(time.Hour)
	_, err = svc.EndSession(context.Background(), session.ID, 3, nil)
	assert.NoError(t, err)
}

func TestEndSessionNotFound(t *testing.T) {
	svc, _, _, _ := setupSessionService(t, time.Now())

	_, err := svc.EndSession(context.Background(), 99, 3, nil)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestUpdateSessionNotes(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, courseStore, sessionStore, _ := setupSessionService(t, start)
	courseID := createCourse(t, courseStore, "Python Basics")

	session, err := svc.StartSession(context.Background(), courseID, strPtr("old"))
	require.NoError(t, err)

	err = svc.UpdateSessionNotes(context.Background(), session.ID, strPtr("revised notes"))
	require.NoError(t, err)

	stored, err := sessionStore.GetSessionByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised notes", *stored.Notes)
}

func TestGetSessionsByCourseOrder(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, courseStore, _, now := setupSessionService(t, start)
	courseID := createCourse(t, courseStore, "Python Basics")

	first, err := svc.StartSession(context.Background(), courseID, nil)
	require.NoError(t, err)

	*now = start.Add(time.Hour)
	second, err := svc.StartSession(context.Background(), courseID, nil)
	require.NoError(t, err)

	sessions, err := svc.GetSessionsByCourse(context.Background(), courseID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}
