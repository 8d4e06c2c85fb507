package usecase

import (
	"time"

	"hotel-loyalty/internal/data/entity"
)

// SelectLevel scans levels in the given order and returns the first one
// whose range contains points. Callers pass levels sorted by MinPoints
// descending so the highest qualifying level wins.
func SelectLevel(levels []*entity.LoyaltyLevel, points int) *entity.LoyaltyLevel {
	for _, l := range levels {
		if l.Contains(points) {
			return l
		}
	}
	return nil
}

// LevelExpiry is activation plus the level's validity in calendar months.
func LevelExpiry(level *entity.LoyaltyLevel, activatedAt time.Time) time.Time {
	months := level.ValidityInMonths
	if months <= 0 {
		months = defaultValidityMonths
	}
	return activatedAt.AddDate(0, months, 0)
}

const defaultValidityMonths = 12

// NeedsNewStatus reports whether selecting level must append a status row.
func NeedsNewStatus(latest *entity.UserLoyaltyStatus, level *entity.LoyaltyLevel) bool {
	if level == nil {
		return false
	}
	return latest == nil || latest.LevelID != level.ID
}
