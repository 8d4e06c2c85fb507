package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingType string

const (
	BookingTypeRoom     BookingType = "room"
	BookingTypeActivity BookingType = "activity"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Blocking reports whether a booking in this status still holds its room.
func (s BookingStatus) Blocking() bool {
	return s != BookingStatusCancelled && s != BookingStatusCompleted
}

type BookingPaymentStatus string

const (
	BookingPaymentPending  BookingPaymentStatus = "pending"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
)

// Booking targets exactly one of RoomID or ActivityID, matching BookingType.
// EndDate is set for room bookings only.
type Booking struct {
	BaseNoDelete
	UserID        uuid.UUID            `db:"user_id"`
	BookingType   BookingType          `db:"booking_type"`
	RoomID        *uuid.UUID           `db:"room_id"`
	ActivityID    *uuid.UUID           `db:"activity_id"`
	StartDate     time.Time            `db:"start_date"`
	EndDate       *time.Time           `db:"end_date"`
	Status        BookingStatus        `db:"status"`
	TotalAmount   decimal.Decimal      `db:"total_amount"`
	PaymentStatus BookingPaymentStatus `db:"payment_status"`
}
