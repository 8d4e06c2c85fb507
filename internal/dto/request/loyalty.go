package request

type PointsTransactionRequest struct {
	Points       int     `json:"points"`
	ActivityType string  `json:"activityType" validate:"required,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

type LoyaltyLevelRequest struct {
	LevelName        string `json:"levelName" validate:"required,max=100"`
	MinPoints        int    `json:"minPoints" validate:"gte=0"`
	MaxPoints        *int   `json:"maxPoints,omitempty"`
	ValidityInMonths int    `json:"validityInMonths" validate:"omitempty,min=1,max=120"`
}
