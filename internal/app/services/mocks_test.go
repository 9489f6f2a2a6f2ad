package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
)

// In-memory store fakes. They mirror the repository behavior the services
// rely on, including the conditional close and completion updates.

type fakeCourseStore struct {
	mu      sync.Mutex
	nextID  int64
	courses map[int64]*models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		nextID:  1,
		courses: make(map[int64]*models.Course),
	}
}

func (f *fakeCourseStore) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	course.ID = f.nextID
	course.CreatedAt = time.Now().UTC()
	f.nextID++

	copied := *course
	f.courses[course.ID] = &copied
	return course.ID, nil
}

func (f *fakeCourseStore) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	courses := make([]*models.Course, 0, len(f.courses))
	for id := int64(1); id < f.nextID; id++ {
		if course, ok := f.courses[id]; ok {
			copied := *course
			courses = append(courses, &copied)
		}
	}
	return courses, nil
}

func (f *fakeCourseStore) UpdateCourse(ctx context.Context, course *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	copied := *course
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseStore) DeleteCourse(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) CourseExists(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.courses[id]
	return ok, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	nextID   int64
	sessions map[int64]*models.StudySession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		nextID:   1,
		sessions: make(map[int64]*models.StudySession),
	}
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, session *models.StudySession) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session.ID = f.nextID
	f.nextID++

	copied := *session
	f.sessions[session.ID] = &copied
	return session.ID, nil
}

func (f *fakeSessionStore) GetSessionByID(ctx context.Context, id int64) (*models.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionStore) GetSessionsByCourse(ctx context.Context, courseID int64) ([]*models.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var sessions []*models.StudySession
	for id := f.nextID - 1; id >= 1; id-- {
		if session, ok := f.sessions[id]; ok && session.CourseID == courseID {
			copied := *session
			sessions = append(sessions, &copied)
		}
	}
	return sessions, nil
}

func (f *fakeSessionStore) GetClosedSessions(ctx context.Context) ([]*models.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var sessions []*models.StudySession
	for id := int64(1); id < f.nextID; id++ {
		if session, ok := f.sessions[id]; ok && session.EndTime != nil {
			copied := *session
			sessions = append(sessions, &copied)
		}
	}
	return sessions, nil
}

// CloseSession applies the same conditional update as the real store: it only
// succeeds while the session is still open, and rejects an end time at or
// before the start.
func (f *fakeSessionStore) CloseSession(ctx context.Context, id int64, endTime time.Time, rating int, notes *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[id]
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	if session.EndTime != nil {
		return apperrors.ErrSessionAlreadyClosed
	}
	if !endTime.After(session.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidationFailed)
	}

	end := endTime
	session.EndTime = &end
	session.Rating = &rating
	if notes != nil {
		session.Notes = notes
	}
	return nil
}

func (f *fakeSessionStore) UpdateSessionNotes(ctx context.Context, id int64, notes *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[id]
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	session.Notes = notes
	return nil
}

func (f *fakeSessionStore) SumClosedMinutesByCourse(ctx context.Context, courseID int64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var minutes float64
	for _, session := range f.sessions {
		if session.CourseID == courseID && session.EndTime != nil {
			minutes += session.EndTime.Sub(session.StartTime).Minutes()
		}
	}
	return minutes, nil
}

func (f *fakeSessionStore) CountClosedByCourse(ctx context.Context, courseID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, session := range f.sessions {
		if session.CourseID == courseID && session.EndTime != nil {
			count++
		}
	}
	return count, nil
}

type fakeGoalStore struct {
	mu     sync.Mutex
	nextID int64
	goals  map[int64]*models.LearningGoal
}

func newFakeGoalStore() *fakeGoalStore {
	return &fakeGoalStore{
		nextID: 1,
		goals:  make(map[int64]*models.LearningGoal),
	}
}

func (f *fakeGoalStore) CreateGoal(ctx context.Context, goal *models.LearningGoal) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	goal.ID = f.nextID
	f.nextID++

	copied := *goal
	f.goals[goal.ID] = &copied
	return goal.ID, nil
}

func (f *fakeGoalStore) GetGoalByID(ctx context.Context, id int64) (*models.LearningGoal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	goal, ok := f.goals[id]
	if !ok {
		return nil, apperrors.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (f *fakeGoalStore) GetAllGoals(ctx context.Context, onlyIncomplete bool) ([]*models.LearningGoal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var goals []*models.LearningGoal
	for id := int64(1); id < f.nextID; id++ {
		goal, ok := f.goals[id]
		if !ok {
			continue
		}
		if onlyIncomplete && goal.IsCompleted {
			continue
		}
		copied := *goal
		goals = append(goals, &copied)
	}
	return goals, nil
}

func (f *fakeGoalStore) UpdateGoal(ctx context.Context, goal *models.LearningGoal) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.goals[goal.ID]
	if !ok {
		return apperrors.ErrGoalNotFound
	}

	// The update surface excludes completion
	copied := *goal
	copied.IsCompleted = existing.IsCompleted
	f.goals[goal.ID] = &copied
	return nil
}

// CompleteGoal succeeds only while the goal is still incomplete, matching the
// conditional update in the real store.
func (f *fakeGoalStore) CompleteGoal(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	goal, ok := f.goals[id]
	if !ok {
		return apperrors.ErrGoalNotFound
	}
	if goal.IsCompleted {
		return apperrors.ErrGoalAlreadyCompleted
	}
	goal.IsCompleted = true
	return nil
}

func (f *fakeGoalStore) DeleteGoal(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.goals[id]; !ok {
		return apperrors.ErrGoalNotFound
	}
	delete(f.goals, id)
	return nil
}

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		nextID: 1,
		users:  make(map[int64]*models.User),
	}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Username == user.Username {
			return 0, apperrors.ErrUsernameExists
		}
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailExists
		}
	}

	user.ID = f.nextID
	user.CreatedAt = time.Now().UTC()
	f.nextID++

	copied := *user
	f.users[user.ID] = &copied
	return user.ID, nil
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]*models.User, 0, len(f.users))
	for id := int64(1); id < f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (f *fakeUserStore) DeleteUser(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// strPtr is a test helper for building optional string fields.
func strPtr(s string) *string { return &s }
