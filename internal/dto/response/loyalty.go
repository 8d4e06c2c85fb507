package response

import (
	"time"

	"hotel-loyalty/internal/data/entity"
)

// NoTier is reported when a user has never been assigned a level.
const NoTier = "None"

type LoyaltyLevelResponse struct {
	ID               string `json:"id"`
	LevelName        string `json:"levelName"`
	MinPoints        int    `json:"minPoints"`
	MaxPoints        *int   `json:"maxPoints"`
	ValidityInMonths int    `json:"validityInMonths"`
}

type PointsTransactionResponse struct {
	ID              string    `json:"id"`
	Points          int       `json:"points"`
	ActivityType    string    `json:"activityType"`
	Description     *string   `json:"description,omitempty"`
	TransactionDate time.Time `json:"transactionDate"`
	PointsYear      int       `json:"pointsYear"`
}

type TierResponse struct {
	TotalPoints int        `json:"totalPoints"`
	LevelName   string     `json:"levelName"`
	Changed     bool       `json:"changed"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

type PointsTransactionResultResponse struct {
	Transaction PointsTransactionResponse `json:"transaction"`
	Tier        TierResponse              `json:"tier"`
}

type LoyaltyStatusResponse struct {
	Tier        string     `json:"tier"`
	LevelID     *string    `json:"levelId,omitempty"`
	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Year        int        `json:"year"`
	TotalPoints int        `json:"totalPoints"`
}

type PointsHistoryResponse struct {
	Year         int                         `json:"year"`
	TotalPoints  int                         `json:"totalPoints"`
	Transactions []PointsTransactionResponse `json:"transactions"`
}

func LoyaltyLevelToResponse(l *entity.LoyaltyLevel) LoyaltyLevelResponse {
	return LoyaltyLevelResponse{
		ID:               l.ID.String(),
		LevelName:        l.LevelName,
		MinPoints:        l.MinPoints,
		MaxPoints:        l.MaxPoints,
		ValidityInMonths: l.ValidityInMonths,
	}
}

func PointsTransactionToResponse(t *entity.PointsTransaction) PointsTransactionResponse {
	return PointsTransactionResponse{
		ID:              t.ID.String(),
		Points:          t.Points,
		ActivityType:    t.ActivityType,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		PointsYear:      t.PointsYear,
	}
}
