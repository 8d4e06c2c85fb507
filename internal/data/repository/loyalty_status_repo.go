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

type LoyaltyStatusRepository interface {
	Create(ctx context.Context, status *entity.UserLoyaltyStatus) error
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserLoyaltyStatus, error)
}

type loyaltyStatusRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewLoyaltyStatusRepository(db database.Querier, log *zap.Logger) LoyaltyStatusRepository {
	return &loyaltyStatusRepository{
		db:  db,
		log: log.With(zap.String("repository", "loyalty_status")),
	}
}

func (r *loyaltyStatusRepository) Create(ctx context.Context, status *entity.UserLoyaltyStatus) error {
	query := `
		INSERT INTO user_loyalty_status (id, user_id, level_id, activated_at, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		status.ID,
		status.UserID,
		status.LevelID,
		status.ActivatedAt,
		status.ExpiresAt,
		status.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create loyalty status",
			zap.Error(err),
			zap.String("user_id", status.UserID.String()),
			zap.String("level_id", status.LevelID.String()),
		)
		return fmt.Errorf("create loyalty status for user %s: %w", status.UserID.String(), err)
	}

	return nil
}

func (r *loyaltyStatusRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserLoyaltyStatus, error) {
	query := `
		SELECT id, user_id, level_id, activated_at, expires_at, created_at
		FROM user_loyalty_status
		WHERE user_id = $1
		ORDER BY activated_at DESC, created_at DESC
		LIMIT 1
	`

	var s entity.UserLoyaltyStatus
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.ID,
		&s.UserID,
		&s.LevelID,
		&s.ActivatedAt,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest loyalty status",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find latest loyalty status for user %s: %w", userID.String(), err)
	}

	return &s, nil
}
