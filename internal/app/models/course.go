package models

import "time"

// Difficulty bounds for courses.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Course represents a learning course being tracked.
type Course struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     *string   `json:"description,omitempty" db:"description"` // Nullable
	DurationHours   int       `json:"durationHours" db:"duration_hours"`      // Target effort
	DifficultyLevel int       `json:"difficultyLevel" db:"difficulty_level"`  // 1-5 scale
	Category        *string   `json:"category,omitempty" db:"category"`       // Nullable
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// IsBeginnerFriendly reports whether the course is suitable for beginners.
func (c *Course) IsBeginnerFriendly() bool {
	return c.DifficultyLevel <= 2
}
