package usecase

import (
	"math"
	"time"

	"hotel-loyalty/internal/data/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingWindow is a parsed, shape-checked booking request.
type BookingWindow struct {
	Type       entity.BookingType
	RoomID     uuid.UUID
	ActivityID uuid.UUID
	Start      time.Time
	End        *time.Time
}

// CheckBookingShape verifies that the reference and dates match the booking type.
func CheckBookingShape(kind entity.BookingType, roomID, activityID *uuid.UUID, start time.Time, end *time.Time) (*BookingWindow, error) {
	w := &BookingWindow{Type: kind, Start: start, End: end}

	switch kind {
	case entity.BookingTypeRoom:
		if roomID == nil || *roomID == uuid.Nil {
			return nil, invalidField("roomId", "This field is required for room bookings")
		}
		if end == nil {
			return nil, invalidField("endDate", "This field is required for room bookings")
		}
		if !end.After(start) {
			return nil, invalidField("endDate", "Must be after startDate")
		}
		w.RoomID = *roomID
	case entity.BookingTypeActivity:
		if activityID == nil || *activityID == uuid.Nil {
			return nil, invalidField("activityId", "This field is required for activity bookings")
		}
		if end != nil && end.Before(start) {
			return nil, invalidField("endDate", "Must not be before startDate")
		}
		w.ActivityID = *activityID
	default:
		return nil, invalidField("bookingType", "Must be one of: room, activity")
	}

	return w, nil
}

// NightsBetween returns the number of started 24h periods in [start, end).
func NightsBetween(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int64(math.Ceil(d.Hours() / 24))
}

// RoomTotal is the nightly price times the number of started days.
func RoomTotal(nightly decimal.Decimal, start, end time.Time) decimal.Decimal {
	return nightly.Mul(decimal.NewFromInt(NightsBetween(start, end)))
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and [bStart, bEnd] intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// FirstConflict returns the first booking of the room that still holds it
// and intersects [start, end], or nil.
func FirstConflict(existing []*entity.Booking, roomID uuid.UUID, start, end time.Time) *entity.Booking {
	for _, b := range existing {
		if b.BookingType != entity.BookingTypeRoom || b.RoomID == nil || *b.RoomID != roomID {
			continue
		}
		if !b.Status.Blocking() || b.EndDate == nil {
			continue
		}
		if Overlaps(b.StartDate, *b.EndDate, start, end) {
			return b
		}
	}
	return nil
}
