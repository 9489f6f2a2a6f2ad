package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository  *CourseRepository
	SessionRepository *SessionRepository
	GoalRepository    *GoalRepository
	UserRepository    *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:  NewCourseRepository(db),
		SessionRepository: NewSessionRepository(db),
		GoalRepository:    NewGoalRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
