package dto

import "time"

// OverallStats summarizes study activity across all courses.
type OverallStats struct {
	TotalCourses         int     `json:"totalCourses"`
	CompletedCourses     int     `json:"completedCourses"`
	InProgressCourses    int     `json:"inProgressCourses"`
	NotStartedCourses    int     `json:"notStartedCourses"`
	TotalStudyHours      float64 `json:"totalStudyHours"`
	AverageSessionRating float64 `json:"averageSessionRating"` // 0.0 when no closed sessions
	StudyStreakDays      int     `json:"studyStreakDays"`
}

// WeekBucket is one entry of the weekly progress series. WeekStart is the
// Monday that opens the ISO week, in UTC.
type WeekBucket struct {
	WeekStart time.Time `json:"weekStart"`
	Label     string    `json:"label" example:"Week of Aug 17"`
	Hours     float64   `json:"hours"`
}

// DifficultyDistribution counts courses per difficulty band.
type DifficultyDistribution struct {
	Beginner     int `json:"beginner"`     // difficulty 1-2
	Intermediate int `json:"intermediate"` // difficulty 3
	Advanced     int `json:"advanced"`     // difficulty 4-5
}

// GoalDeadline is the countdown for one incomplete goal with a target date.
// DaysUntilTarget is negative when the goal is overdue.
type GoalDeadline struct {
	GoalID          int64     `json:"goalId"`
	Title           string    `json:"title"`
	TargetDate      time.Time `json:"targetDate"`
	DaysUntilTarget int       `json:"daysUntilTarget"`
}

// ProgressReport is a single read-only snapshot combining every analytics
// view, plus the instant it was generated.
type ProgressReport struct {
	Stats                  OverallStats           `json:"stats"`
	WeeklyProgress         []WeekBucket           `json:"weeklyProgress"`
	DifficultyDistribution DifficultyDistribution `json:"difficultyDistribution"`
	GoalDeadlines          []GoalDeadline         `json:"goalDeadlines"`
	GeneratedAt            time.Time              `json:"generatedAt"`
}
