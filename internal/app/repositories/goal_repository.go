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
	"github.com/deniz/studytrack/internal/pkg/dberrors"
	"github.com/deniz/studytrack/internal/pkg/logger"
)

// GoalRepository handles learning goal database operations
type GoalRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(db *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const goalColumns = "id, title, description, target_date, is_completed, course_id"

func scanGoal(row pgx.Row) (*models.LearningGoal, error) {
	goal := &models.LearningGoal{}
	err := row.Scan(
		&goal.ID, &goal.Title, &goal.Description,
		&goal.TargetDate, &goal.IsCompleted, &goal.CourseID,
	)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// CreateGoal inserts a new learning goal.
func (r *GoalRepository) CreateGoal(ctx context.Context, goal *models.LearningGoal) (int64, error) {
	sql, args, err := r.sb.Insert("learning_goals").
		Columns("title", "description", "target_date", "course_id").
		Values(goal.Title, goal.Description, goal.TargetDate, goal.CourseID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build create goal query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&goal.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create goal query")
		return 0, fmt.Errorf("error creating goal: %w", err)
	}

	return goal.ID, nil
}

// GetGoalByID retrieves a goal by ID
func (r *GoalRepository) GetGoalByID(ctx context.Context, id int64) (*models.LearningGoal, error) {
	sql, args, err := r.sb.Select(goalColumns).
		From("learning_goals").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get goal query: %w", err)
	}

	goal, err := scanGoal(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGoalNotFound
		}
		logger.Error().Err(err).Int64("goalID", id).Msg("Error scanning goal row")
		return nil, fmt.Errorf("error getting goal by ID: %w", err)
	}

	return goal, nil
}

// GetAllGoals retrieves goals, optionally only the incomplete ones.
func (r *GoalRepository) GetAllGoals(ctx context.Context, onlyIncomplete bool) ([]*models.LearningGoal, error) {
	builder := r.sb.Select(goalColumns).
		From("learning_goals").
		OrderBy("id ASC")
	if onlyIncomplete {
		builder = builder.Where(squirrel.Eq{"is_completed": false})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all goals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying goals: %w", err)
	}
	defer rows.Close()

	goals := []*models.LearningGoal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning goal row: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}

	return goals, nil
}

// UpdateGoal updates the mutable fields of a goal. The completion flag is
// excluded; it only moves through CompleteGoal.
func (r *GoalRepository) UpdateGoal(ctx context.Context, goal *models.LearningGoal) error {
	sql, args, err := r.sb.Update("learning_goals").
		SetMap(map[string]interface{}{
			"title":       goal.Title,
			"description": goal.Description,
			"target_date": goal.TargetDate,
			"course_id":   goal.CourseID,
		}).
		Where(squirrel.Eq{"id": goal.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update goal query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("goalID", goal.ID).Msg("Error executing update goal query")
		return fmt.Errorf("error updating goal: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

// CompleteGoal marks a goal completed. The update is conditioned on the goal
// still being incomplete; completion is one-way.
func (r *GoalRepository) CompleteGoal(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("learning_goals").
		Set("is_completed", true).
		Where(squirrel.Eq{"id": id, "is_completed": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build complete goal query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("goalID", id).Msg("Error executing complete goal query")
		return fmt.Errorf("error completing goal: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		exists, err := r.goalExists(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrGoalAlreadyCompleted
		}
		return apperrors.ErrGoalNotFound
	}

	return nil
}

// DeleteGoal deletes a goal by ID
func (r *GoalRepository) DeleteGoal(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("learning_goals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build delete goal query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting goal: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

func (r *GoalRepository) goalExists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("learning_goals").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("failed to build goal existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking goal existence: %w", err)
	}

	return exists, nil
}
