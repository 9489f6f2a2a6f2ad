package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/studytrack/internal/app/models"
	"github.com/deniz/studytrack/internal/pkg/apperrors"
	"github.com/deniz/studytrack/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCourse inserts a new course and returns its generated id.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "description", "duration_hours", "difficulty_level", "category").
		Values(course.Name, course.Description, course.DurationHours, course.DifficultyLevel, course.Category).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return course.ID, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "duration_hours", "difficulty_level", "category", "created_at").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.Name, &course.Description,
		&course.DurationHours, &course.DifficultyLevel, &course.Category, &course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses ordered by creation time.
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "duration_hours", "difficulty_level", "category", "created_at").
		From("courses").
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.Name, &course.Description,
			&course.DurationHours, &course.DifficultyLevel, &course.Category, &course.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// UpdateCourse updates an existing course. The caller supplies the full
// merged row; partial-field merging happens in the service layer.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"name":             course.Name,
			"description":      course.Description,
			"duration_hours":   course.DurationHours,
			"difficulty_level": course.DifficultyLevel,
			"category":         course.Category,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes a course together with its study sessions and clears
// the reference on any goals pointing to it. All three writes happen in one
// transaction; the schema constraints (ON DELETE CASCADE / SET NULL) back the
// same rules if the course is deleted through another path.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete course transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	delSessions, delSessionsArgs, err := r.sb.Delete("study_sessions").
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete sessions query: %w", err)
	}
	if _, err := tx.Exec(ctx, delSessions, delSessionsArgs...); err != nil {
		return fmt.Errorf("error deleting course sessions: %w", err)
	}

	clearGoals, clearGoalsArgs, err := r.sb.Update("learning_goals").
		Set("course_id", nil).
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear goal references query: %w", err)
	}
	if _, err := tx.Exec(ctx, clearGoals, clearGoalsArgs...); err != nil {
		return fmt.Errorf("error clearing goal references: %w", err)
	}

	delCourse, delCourseArgs, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, delCourse, delCourseArgs...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete course transaction: %w", err)
	}

	return nil
}

// CourseExists reports whether a course with the given id exists.
func (r *CourseRepository) CourseExists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("failed to build course existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}
