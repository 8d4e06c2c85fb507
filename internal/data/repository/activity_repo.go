package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-loyalty/internal/data/entity"
	"hotel-loyalty/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	FindAll(ctx context.Context, limit, offset int, onlyAvailable bool) ([]*entity.Activity, error)
	CountAll(ctx context.Context, onlyAvailable bool) (int64, error)
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type activityRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewActivityRepository(db database.Querier, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

const activityColumns = `id, name, description, price, available, created_at, updated_at, deleted_at`

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.Price,
		&a.Available,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, name, description, price, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Price,
		activity.Available,
		activity.CreatedAt,
		activity.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("name", activity.Name),
		)
		return fmt.Errorf("create activity %s: %w", activity.Name, err)
	}

	return nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1 AND deleted_at IS NULL`

	activity, err := scanActivity(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find activity by ID",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return nil, fmt.Errorf("find activity by ID %s: %w", id.String(), err)
	}

	return activity, nil
}

func (r *activityRepository) FindAll(ctx context.Context, limit, offset int, onlyAvailable bool) ([]*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE deleted_at IS NULL AND ($3 = FALSE OR available = TRUE)
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, onlyAvailable)
	if err != nil {
		r.log.Error("Failed to find activities", zap.Error(err))
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}

	return activities, nil
}

func (r *activityRepository) CountAll(ctx context.Context, onlyAvailable bool) (int64, error) {
	query := `SELECT COUNT(*) FROM activities WHERE deleted_at IS NULL AND ($1 = FALSE OR available = TRUE)`

	var count int64
	if err := r.db.QueryRow(ctx, query, onlyAvailable).Scan(&count); err != nil {
		r.log.Error("Failed to count activities", zap.Error(err))
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return count, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, description = $3, price = $4, available = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.Name,
		activity.Description,
		activity.Price,
		activity.Available,
		activity.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update activity",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
		return fmt.Errorf("update activity %s: %w", activity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE activities SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete activity",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return fmt.Errorf("delete activity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", id.String())
	}

	return nil
}
