package models

import "time"

// LearningGoal represents a learning goal or milestone, optionally tied to a
// course. Once completed it stays completed; deleting the referenced course
// clears CourseID instead of removing the goal.
type LearningGoal struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"` // Nullable
	TargetDate  *time.Time `json:"targetDate,omitempty" db:"target_date"`  // Nullable
	IsCompleted bool       `json:"isCompleted" db:"is_completed"`
	CourseID    *int64     `json:"courseId,omitempty" db:"course_id"` // Nullable reference
}
