package entity

import "github.com/shopspring/decimal"

type Activity struct {
	Base
	Name        string          `db:"name"`
	Description *string         `db:"description"`
	Price       decimal.Decimal `db:"price"` // flat
	Available   bool            `db:"available"`
}
