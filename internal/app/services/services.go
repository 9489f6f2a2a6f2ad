package services

import (
	"context"
	"time"

	"github.com/deniz/studytrack/internal/app/models"
)

// Services defined in this package:
// - CourseService: course CRUD and per-course progress
// - SessionService: the open/closed lifecycle of study sessions
// - GoalService: learning goal CRUD and one-way completion
// - UserService: tracker user CRUD
// - AnalyticsService: read-side aggregation over the store

// The store interfaces below are satisfied by the concrete repositories in
// internal/app/repositories; tests substitute in-memory fakes.

// CourseStore is the persistence contract for courses.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
	CourseExists(ctx context.Context, id int64) (bool, error)
}

// SessionStore is the persistence contract for study sessions.
type SessionStore interface {
	CreateSession(ctx context.Context, session *models.StudySession) (int64, error)
	GetSessionByID(ctx context.Context, id int64) (*models.StudySession, error)
	GetSessionsByCourse(ctx context.Context, courseID int64) ([]*models.StudySession, error)
	GetClosedSessions(ctx context.Context) ([]*models.StudySession, error)
	CloseSession(ctx context.Context, id int64, endTime time.Time, rating int, notes *string) error
	UpdateSessionNotes(ctx context.Context, id int64, notes *string) error
	SumClosedMinutesByCourse(ctx context.Context, courseID int64) (float64, error)
	CountClosedByCourse(ctx context.Context, courseID int64) (int, error)
}

// GoalStore is the persistence contract for learning goals.
type GoalStore interface {
	CreateGoal(ctx context.Context, goal *models.LearningGoal) (int64, error)
	GetGoalByID(ctx context.Context, id int64) (*models.LearningGoal, error)
	GetAllGoals(ctx context.Context, onlyIncomplete bool) ([]*models.LearningGoal, error)
	UpdateGoal(ctx context.Context, goal *models.LearningGoal) error
	CompleteGoal(ctx context.Context, id int64) error
	DeleteGoal(ctx context.Context, id int64) error
}

// UserStore is the persistence contract for users.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
