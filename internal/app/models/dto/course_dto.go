package dto

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description"`
	DurationHours   int     `json:"durationHours" binding:"omitempty,min=0"`
	DifficultyLevel int     `json:"difficultyLevel" binding:"required,min=1,max=5"`
	Category        *string `json:"category"`
}

// UpdateCourseRequest is the payload for a partial course update. Only
// supplied fields are applied; the merged result is re-validated.
type UpdateCourseRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationHours   *int    `json:"durationHours"`
	DifficultyLevel *int    `json:"difficultyLevel"`
	Category        *string `json:"category"`
}

// CourseProgressResponse is a course with its accumulated study time.
type CourseProgressResponse struct {
	CourseID    int64   `json:"courseId"`
	Name        string  `json:"name"`
	TargetHours int     `json:"targetHours"`
	StudiedHours float64 `json:"studiedHours"`
	Status      string  `json:"status"` // not_started | in_progress | completed
}
