package request

import "github.com/shopspring/decimal"

type RoomRequest struct {
	RoomType    string          `json:"roomType" validate:"required,max=100"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   *bool           `json:"available,omitempty"`
}

type ActivityRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   *bool           `json:"available,omitempty"`
}
