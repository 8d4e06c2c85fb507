package request

// CreateBookingRequest carries dates as ISO 8601 strings; the booking
// service parses them and checks which reference the booking type needs.
type CreateBookingRequest struct {
	BookingType   string `json:"bookingType" validate:"required,oneof=room activity"`
	RoomID        string `json:"roomId,omitempty" validate:"omitempty,uuid"`
	ActivityID    string `json:"activityId,omitempty" validate:"omitempty,uuid"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate,omitempty"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit_card debit_card bank_transfer"`
}

type PayBookingRequest struct {
	TransactionID *string `json:"transactionId,omitempty" validate:"omitempty,max=255"`
}
