package response

import (
	"time"

	"hotel-loyalty/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID            string                      `json:"id"`
	UserID        string                      `json:"userId"`
	BookingType   entity.BookingType          `json:"bookingType"`
	RoomID        *string                     `json:"roomId,omitempty"`
	ActivityID    *string                     `json:"activityId,omitempty"`
	StartDate     time.Time                   `json:"startDate"`
	EndDate       *time.Time                  `json:"endDate,omitempty"`
	Status        entity.BookingStatus        `json:"status"`
	TotalAmount   decimal.Decimal             `json:"totalAmount"`
	PaymentStatus entity.BookingPaymentStatus `json:"paymentStatus"`
	Payment       *PaymentResponse            `json:"payment,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"bookingId"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transactionId,omitempty"`
	PaymentDate   time.Time            `json:"paymentDate"`
}

func PaymentToResponse(p *entity.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            p.ID.String(),
		BookingID:     p.BookingID.String(),
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
	}
}

func BookingToResponse(b *entity.Booking, payment *entity.Payment) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		UserID:        b.UserID.String(),
		BookingType:   b.BookingType,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        b.Status,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		Payment:       PaymentToResponse(payment),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.RoomID != nil {
		id := b.RoomID.String()
		resp.RoomID = &id
	}
	if b.ActivityID != nil {
		id := b.ActivityID.String()
		resp.ActivityID = &id
	}
	return resp
}
