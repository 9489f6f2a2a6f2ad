package dto

import "time"

// StartSessionRequest is the payload for starting a study session.
type StartSessionRequest struct {
	Notes *string `json:"notes"`
}

// EndSessionRequest is the payload for closing an open study session. Rating
// is required at close time; notes may replace the ones set at start.
type EndSessionRequest struct {
	Rating int     `json:"rating" binding:"required,min=1,max=5"`
	Notes  *string `json:"notes"`
}

// UpdateSessionRequest is the payload for updating an existing session.
// Notes are the only field mutable outside the open-to-closed transition.
type UpdateSessionRequest struct {
	Notes *string `json:"notes" binding:"required"`
}

// SessionClosedResponse reports the outcome of closing a session.
type SessionClosedResponse struct {
	SessionID       int64     `json:"sessionId"`
	CourseID        int64     `json:"courseId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Rating          int       `json:"rating"`
}
