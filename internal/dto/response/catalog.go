package response

import (
	"time"

	"hotel-loyalty/internal/data/entity"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID          string          `json:"id"`
	RoomType    string          `json:"roomType"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ActivityResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		RoomType:    room.RoomType,
		Description: room.Description,
		Price:       room.Price,
		Available:   room.Available,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

func ActivityToResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID.String(),
		Name:        activity.Name,
		Description: activity.Description,
		Price:       activity.Price,
		Available:   activity.Available,
		CreatedAt:   activity.CreatedAt,
		UpdatedAt:   activity.UpdatedAt,
	}
}
