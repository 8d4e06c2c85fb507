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

type LoyaltyLevelRepository interface {
	Create(ctx context.Context, level *entity.LoyaltyLevel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyLevel, error)
	FindAll(ctx context.Context) ([]*entity.LoyaltyLevel, error)
	FindAllByMinPointsDesc(ctx context.Context) ([]*entity.LoyaltyLevel, error)
}

type loyaltyLevelRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewLoyaltyLevelRepository(db database.Querier, log *zap.Logger) LoyaltyLevelRepository {
	return &loyaltyLevelRepository{
		db:  db,
		log: log.With(zap.String("repository", "loyalty_level")),
	}
}

const loyaltyLevelColumns = `id, level_name, min_points, max_points, validity_in_months, created_at, updated_at`

func scanLoyaltyLevel(row pgx.Row) (*entity.LoyaltyLevel, error) {
	var l entity.LoyaltyLevel
	err := row.Scan(
		&l.ID,
		&l.LevelName,
		&l.MinPoints,
		&l.MaxPoints,
		&l.ValidityInMonths,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *loyaltyLevelRepository) Create(ctx context.Context, level *entity.LoyaltyLevel) error {
	query := `
		INSERT INTO loyalty_levels (id, level_name, min_points, max_points, validity_in_months, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		level.ID,
		level.LevelName,
		level.MinPoints,
		level.MaxPoints,
		level.ValidityInMonths,
		level.CreatedAt,
		level.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("create loyalty level %s: %w", level.LevelName, ErrDuplicate)
		}
		r.log.Error("Failed to create loyalty level",
			zap.Error(err),
			zap.String("level_name", level.LevelName),
		)
		return fmt.Errorf("create loyalty level %s: %w", level.LevelName, err)
	}

	return nil
}

func (r *loyaltyLevelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyLevel, error) {
	query := `SELECT ` + loyaltyLevelColumns + ` FROM loyalty_levels WHERE id = $1`

	level, err := scanLoyaltyLevel(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find loyalty level",
			zap.Error(err),
			zap.String("level_id", id.String()),
		)
		return nil, fmt.Errorf("find loyalty level %s: %w", id.String(), err)
	}

	return level, nil
}

func (r *loyaltyLevelRepository) FindAll(ctx context.Context) ([]*entity.LoyaltyLevel, error) {
	return r.queryLevels(ctx, `SELECT `+loyaltyLevelColumns+` FROM loyalty_levels ORDER BY min_points ASC`)
}

func (r *loyaltyLevelRepository) FindAllByMinPointsDesc(ctx context.Context) ([]*entity.LoyaltyLevel, error) {
	return r.queryLevels(ctx, `SELECT `+loyaltyLevelColumns+` FROM loyalty_levels ORDER BY min_points DESC`)
}

func (r *loyaltyLevelRepository) queryLevels(ctx context.Context, query string) ([]*entity.LoyaltyLevel, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query loyalty levels", zap.Error(err))
		return nil, fmt.Errorf("query loyalty levels: %w", err)
	}
	defer rows.Close()

	var levels []*entity.LoyaltyLevel
	for rows.Next() {
		level, err := scanLoyaltyLevel(rows)
		if err != nil {
			r.log.Error("Failed to scan loyalty level row", zap.Error(err))
			return nil, fmt.Errorf("scan loyalty level row: %w", err)
		}
		levels = append(levels, level)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loyalty level rows: %w", err)
	}

	return levels, nil
}
