package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
	"github.com/deniz/studytrack/internal/pkg/dberrors"
	"github.com/deniz/studytrack/internal/pkg/logger"
)

// SessionRepository handles study session database operations
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const sessionColumns = "id, course_id, start_time, end_time, notes, rating"

func scanSession(row pgx.Row) (*models.StudySession, error) {
	session := &models.StudySession{}
	err := row.Scan(
		&session.ID, &session.CourseID, &session.StartTime,
		&session.EndTime, &session.Notes, &session.Rating,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// CreateSession inserts a new open session (end_time NULL).
func (r *SessionRepository) CreateSession(ctx context.Context, session *models.StudySession) (int64, error) {
	sql, args, err := r.sb.Insert("study_sessions").
		Columns("course_id", "start_time", "notes").
		Values(session.CourseID, session.StartTime, session.Notes).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build create session query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&session.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", session.CourseID).Msg("Error executing create session query")
		return 0, fmt.Errorf("error creating session: %w", err)
	}

	return session.ID, nil
}

// GetSessionByID retrieves a session by ID
func (r *SessionRepository) GetSessionByID(ctx context.Context, id int64) (*models.StudySession, error) {
	sql, args, err := r.sb.Select(sessionColumns).
		From("study_sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	session, err := scanSession(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error scanning session row")
		return nil, fmt.Errorf("error getting session by ID: %w", err)
	}

	return session, nil
}

// GetSessionsByCourse retrieves all sessions of a course, newest first.
func (r *SessionRepository) GetSessionsByCourse(ctx context.Context, courseID int64) ([]*models.StudySession, error) {
	sql, args, err := r.sb.Select(sessionColumns).
		From("study_sessions").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get sessions by course query: %w", err)
	}

	return r.querySessions(ctx, sql, args)
}

// GetClosedSessions retrieves every closed session, ordered by start time.
// The analytics engine aggregates over this set.
func (r *SessionRepository) GetClosedSessions(ctx context.Context) ([]*models.StudySession, error) {
	sql, args, err := r.sb.Select(sessionColumns).
		From("study_sessions").
		Where("end_time IS NOT NULL").
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get closed sessions query: %w", err)
	}

	return r.querySessions(ctx, sql, args)
}

func (r *SessionRepository) querySessions(ctx context.Context, sql string, args []interface{}) ([]*models.StudySession, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.StudySession{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}

// CloseSession transitions a session from open to closed. The update is
// conditioned on the session still being open, so of any concurrent close
// attempts exactly one wins; the losers see ErrSessionAlreadyClosed.
func (r *SessionRepository) CloseSession(ctx context.Context, id int64, endTime time.Time, rating int, notes *string) error {
	builder := r.sb.Update("study_sessions").
		Set("end_time", endTime).
		Set("rating", rating).
		Where(squirrel.Eq{"id": id}).
		Where("end_time IS NULL")
	if notes != nil {
		builder = builder.Set("notes", notes)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build close session query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			// end_time <= start_time tripped the schema check
			return fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidationFailed)
		}
		logger.Error().Err(err).Int64("sessionID", id).Msg("Error executing close session query")
		return fmt.Errorf("error closing session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the session does not exist or it lost the race to a
		// concurrent close. Distinguish the two for the caller.
		exists, err := r.sessionExists(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrSessionAlreadyClosed
		}
		return apperrors.ErrSessionNotFound
	}

	return nil
}

// UpdateSessionNotes replaces the free-text notes of a session.
func (r *SessionRepository) UpdateSessionNotes(ctx context.Context, id int64, notes *string) error {
	sql, args, err := r.sb.Update("study_sessions").
		Set("notes", notes).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update session notes query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating session notes: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

// SumClosedMinutesByCourse returns the total closed-session duration of a
// course in minutes. Course study hours are always recomputed from this, not
// stored.
func (r *SessionRepository) SumClosedMinutesByCourse(ctx context.Context, courseID int64) (float64, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(EXTRACT(EPOCH FROM (end_time - start_time)) / 60), 0)").
		From("study_sessions").
		Where(squirrel.Eq{"course_id": courseID}).
		Where("end_time IS NOT NULL").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build sum minutes query: %w", err)
	}

	var minutes float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&minutes); err != nil {
		return 0, fmt.Errorf("error summing session minutes: %w", err)
	}

	return minutes, nil
}

// CountClosedByCourse returns the number of closed sessions of a course.
func (r *SessionRepository) CountClosedByCourse(ctx context.Context, courseID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("study_sessions").
		Where(squirrel.Eq{"course_id": courseID}).
		Where("end_time IS NOT NULL").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count closed sessions query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting closed sessions: %w", err)
	}

	return count, nil
}

func (r *SessionRepository) sessionExists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("study_sessions").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("failed to build session existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking session existence: %w", err)
	}

	return exists, nil
}
