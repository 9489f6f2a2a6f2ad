package dto

import "time"

// CreateGoalRequest is the payload for creating a learning goal.
type CreateGoalRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	TargetDate  *time.Time `json:"targetDate"`
	CourseID    *int64     `json:"courseId"`
}

// UpdateGoalRequest is the payload for a partial goal update. The completion
// flag cannot be cleared once set; use the complete endpoint to set it.
type UpdateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	TargetDate  *time.Time `json:"targetDate"`
	CourseID    *int64     `json:"courseId"`
}
