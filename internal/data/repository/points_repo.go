package repository

import (
	"context"
	"fmt"

	"hotel-loyalty/internal/data/entity"
	"hotel-loyalty/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PointsRepository interface {
	Create(ctx context.Context, tx *entity.PointsTransaction) error
	SumByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int, error)
	FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.PointsTransaction, error)

	// LockUser takes a transaction-scoped advisory lock keyed by the user.
	// Only meaningful inside a transaction.
	LockUser(ctx context.Context, userID uuid.UUID) error
}

type pointsRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPointsRepository(db database.Querier, log *zap.Logger) PointsRepository {
	return &pointsRepository{
		db:  db,
		log: log.With(zap.String("repository", "points")),
	}
}

func (r *pointsRepository) Create(ctx context.Context, tx *entity.PointsTransaction) error {
	query := `
		INSERT INTO points_transactions (id, user_id, points, activity_type, description,
			transaction_date, points_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		tx.ID,
		tx.UserID,
		tx.Points,
		tx.ActivityType,
		tx.Description,
		tx.TransactionDate,
		tx.PointsYear,
		tx.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create points transaction",
			zap.Error(err),
			zap.String("user_id", tx.UserID.String()),
			zap.Int("points", tx.Points),
		)
		return fmt.Errorf("create points transaction for user %s: %w", tx.UserID.String(), err)
	}

	return nil
}

func (r *pointsRepository) SumByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int, error) {
	query := `
		SELECT COALESCE(SUM(points), 0)
		FROM points_transactions
		WHERE user_id = $1 AND points_year = $2
	`

	var total int
	if err := r.db.QueryRow(ctx, query, userID, year).Scan(&total); err != nil {
		r.log.Error("Failed to sum points",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("year", year),
		)
		return 0, fmt.Errorf("sum points for user %s year %d: %w", userID.String(), year, err)
	}

	return total, nil
}

func (r *pointsRepository) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.PointsTransaction, error) {
	query := `
		SELECT id, user_id, points, activity_type, description, transaction_date, points_year, created_at
		FROM points_transactions
		WHERE user_id = $1 AND points_year = $2
		ORDER BY transaction_date DESC, created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID, year)
	if err != nil {
		r.log.Error("Failed to find points transactions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find points for user %s year %d: %w", userID.String(), year, err)
	}
	defer rows.Close()

	var txs []*entity.PointsTransaction
	for rows.Next() {
		var t entity.PointsTransaction
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Points,
			&t.ActivityType,
			&t.Description,
			&t.TransactionDate,
			&t.PointsYear,
			&t.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan points row", zap.Error(err))
			return nil, fmt.Errorf("scan points row: %w", err)
		}
		txs = append(txs, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate points rows: %w", err)
	}

	return txs, nil
}

func (r *pointsRepository) LockUser(ctx context.Context, userID uuid.UUID) error {
	query := `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

	if _, err := r.db.Exec(ctx, query, userID.String()); err != nil {
		r.log.Error("Failed to lock user for points",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("lock user %s: %w", userID.String(), err)
	}

	return nil
}
