package entity

import "github.com/shopspring/decimal"

type Room struct {
	Base
	RoomType    string          `db:"room_type"`
	Description *string         `db:"description"`
	Price       decimal.Decimal `db:"price"` // per night
	Available   bool            `db:"available"`
}
