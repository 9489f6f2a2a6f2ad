package services

import (
	"math"
	"time"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/app/models/dto"
)

// Course completion states as reported by the analytics views.
const (
	CourseStatusNotStarted = "not_started"
	CourseStatusInProgress = "in_progress"
	CourseStatusCompleted  = "completed"
)

// courseStatus classifies a course from its closed-session count and
// accumulated hours. A course with no closed sessions is not started even if
// its target is zero.
func courseStatus(closedSessions int, studiedHours float64, targetHours int) string {
	if closedSessions == 0 {
		return CourseStatusNotStarted
	}
	if studiedHours >= float64(targetHours) {
		return CourseStatusCompleted
	}
	return CourseStatusInProgress
}

// sessionHours returns the duration of a closed session in hours. Open
// sessions contribute nothing.
func sessionHours(s *models.StudySession) float64 {
	if s.EndTime == nil {
		return 0
	}
	return float64(s.DurationMinutes()) / 60.0
}

// totalStudyHours sums the durations of all closed sessions.
func totalStudyHours(sessions []*models.StudySession) float64 {
	var hours float64
	for _, s := range sessions {
		hours += sessionHours(s)
	}
	return hours
}

// averageRating is the mean rating over closed sessions with a rating set.
// Explicitly 0.0 when there are none.
func averageRating(sessions []*models.StudySession) float64 {
	var sum, count int
	for _, s := range sessions {
		if s.EndTime != nil && s.Rating != nil {
			sum += *s.Rating
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return float64(sum) / float64(count)
}

// utcDate truncates an instant to its UTC calendar day.
func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// studyStreak counts consecutive UTC calendar days, backward from today, each
// containing at least one closed session. A day with none ends the streak, so
// the streak is zero until today's first session is closed.
func studyStreak(sessions []*models.StudySession, now time.Time) int {
	days := make(map[time.Time]bool)
	for _, s := range sessions {
		if s.EndTime != nil {
			days[utcDate(s.StartTime)] = true
		}
	}

	streak := 0
	for day := utcDate(now); days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// weekStart returns the Monday (00:00 UTC) opening the ISO week containing t.
func weekStart(t time.Time) time.Time {
	day := utcDate(t)
	// time.Weekday puts Sunday at 0; shift so Monday is 0
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// weeklyBuckets groups closed-session hours into the trailing `weeks` ISO
// weeks ending with the current one. The result always has exactly `weeks`
// entries in chronological order; weeks without sessions carry zero.
func weeklyBuckets(sessions []*models.StudySession, weeks int, now time.Time) []dto.WeekBucket {
	if weeks < 1 {
		weeks = 1
	}

	currentWeek := weekStart(now)
	buckets := make([]dto.WeekBucket, weeks)
	index := make(map[time.Time]int, weeks)
	for i := 0; i < weeks; i++ {
		start := currentWeek.AddDate(0, 0, -7*(weeks-1-i))
		buckets[i] = dto.WeekBucket{
			WeekStart: start,
			Label:     "Week of " + start.Format("Jan 02"),
			Hours:     0,
		}
		index[start] = i
	}

	for _, s := range sessions {
		if s.EndTime == nil {
			continue
		}
		if i, ok := index[weekStart(s.StartTime)]; ok {
			buckets[i].Hours += sessionHours(s)
		}
	}

	return buckets
}

// difficultyBands counts courses per difficulty band: Beginner 1-2,
// Intermediate 3, Advanced 4-5.
func difficultyBands(courses []*models.Course) dto.DifficultyDistribution {
	var dist dto.DifficultyDistribution
	for _, c := range courses {
		switch {
		case c.DifficultyLevel <= 2:
			dist.Beginner++
		case c.DifficultyLevel == 3:
			dist.Intermediate++
		default:
			dist.Advanced++
		}
	}
	return dist
}

// daysUntil returns the number of days from now until target, rounded up.
// Negative for targets in the past; never clamped.
func daysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}
