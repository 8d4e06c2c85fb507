package entity

import (
	"time"

	"github.com/google/uuid"
)

type LoyaltyLevel struct {
	BaseNoDelete
	LevelName        string `db:"level_name"`
	MinPoints        int    `db:"min_points"`
	MaxPoints        *int   `db:"max_points"` // nil = unbounded
	ValidityInMonths int    `db:"validity_in_months"`
}

// Contains reports whether points falls inside [MinPoints, MaxPoints].
func (l *LoyaltyLevel) Contains(points int) bool {
	return points >= l.MinPoints && (l.MaxPoints == nil || points <= *l.MaxPoints)
}

// UserLoyaltyStatus rows are history; the one with the latest ActivatedAt wins.
type UserLoyaltyStatus struct {
	BaseSimple
	UserID      uuid.UUID `db:"user_id"`
	LevelID     uuid.UUID `db:"level_id"`
	ActivatedAt time.Time `db:"activated_at"`
	ExpiresAt   time.Time `db:"expires_at"`
}

// PointsTransaction is an append-only ledger entry; Points may be negative.
type PointsTransaction struct {
	BaseSimple
	UserID          uuid.UUID `db:"user_id"`
	Points          int       `db:"points"`
	ActivityType    string    `db:"activity_type"`
	Description     *string   `db:"description"`
	TransactionDate time.Time `db:"transaction_date"`
	PointsYear      int       `db:"points_year"`
}
