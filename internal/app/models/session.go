package models

import "time"

// Rating bounds for closed sessions.
const (
	MinRating = 1
	MaxRating = 5
)

// StudySession represents a single timed study session. A session is created
// open (EndTime nil) and transitions exactly once to closed, at which point
// EndTime and Rating are set.
type StudySession struct {
	ID        int64      `json:"id" db:"id"`
	CourseID  int64      `json:"courseId" db:"course_id"`
	StartTime time.Time  `json:"startTime" db:"start_time"`
	EndTime   *time.Time `json:"endTime,omitempty" db:"end_time"` // Nil while open
	Notes     *string    `json:"notes,omitempty" db:"notes"`      // Nullable
	Rating    *int       `json:"rating,omitempty" db:"rating"`    // 1-5, set at close
}

// IsClosed reports whether the session has ended.
func (s *StudySession) IsClosed() bool {
	return s.EndTime != nil
}

// DurationMinutes returns the session duration in whole minutes, rounded
// down. Zero while the session is still open.
func (s *StudySession) DurationMinutes() int {
	if s.EndTime == nil {
		return 0
	}
	return int(s.EndTime.Sub(s.StartTime).Minutes())
}
