package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-loyalty/internal/data/entity"
	"hotel-loyalty/internal/data/repository"
	"hotel-loyalty/internal/dto/request"
	"hotel-loyalty/internal/dto/response"
	"hotel-loyalty/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error)
	PayBooking(ctx context.Context, userID, bookingID uuid.UUID, req *request.PayBookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

// EvaluateBooking decides whether w may be booked using repo, which should be
// bound to the transaction that will insert the booking. It returns the total
// price on acceptance.
func EvaluateBooking(ctx context.Context, repo *repository.Repository, w *BookingWindow) (decimal.Decimal, error) {
	switch w.Type {
	case entity.BookingTypeRoom:
		room, err := repo.Room.FindByIDForUpdate(ctx, w.RoomID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("find room: %w", err)
		}
		if room == nil || !room.Available {
			return decimal.Zero, fmt.Errorf("room %s: %w", w.RoomID.String(), ErrNotAvailable)
		}

		existing, err := repo.Booking.FindConflictingRoomBookings(ctx, w.RoomID, w.Start, *w.End)
		if err != nil {
			return decimal.Zero, fmt.Errorf("check room bookings: %w", err)
		}
		if conflict := FirstConflict(existing, w.RoomID, w.Start, *w.End); conflict != nil {
			return decimal.Zero, fmt.Errorf("conflicts with booking %s: %w", conflict.ID.String(), ErrOverlap)
		}

		return RoomTotal(room.Price, w.Start, *w.End), nil

	case entity.BookingTypeActivity:
		activity, err := repo.Activity.FindByID(ctx, w.ActivityID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("find activity: %w", err)
		}
		if activity == nil || !activity.Available {
			return decimal.Zero, fmt.Errorf("activity %s: %w", w.ActivityID.String(), ErrNotAvailable)
		}
		return activity.Price, nil
	}

	return decimal.Zero, invalidField("bookingType", "Must be one of: room, activity")
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	w, err := parseBookingRequest(req)
	if err != nil {
		return nil, err
	}

	var (
		booking *entity.Booking
		payment *entity.Payment
	)

	err = s.repo.Tx.InTransaction(ctx, func(tx *repository.Repository) error {
		total, err := EvaluateBooking(ctx, tx, w)
		if err != nil {
			return err
		}

		now := s.now()
		booking = &entity.Booking{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:        userID,
			BookingType:   w.Type,
			StartDate:     w.Start,
			EndDate:       w.End,
			Status:        entity.BookingStatusPending,
			TotalAmount:   total,
			PaymentStatus: entity.BookingPaymentPending,
		}
		if w.Type == entity.BookingTypeRoom {
			booking.RoomID = &w.RoomID
		} else {
			booking.ActivityID = &w.ActivityID
		}

		if err := tx.Booking.Create(ctx, booking); err != nil {
			if errors.Is(err, repository.ErrBookingConflict) {
				return fmt.Errorf("room %s: %w", w.RoomID.String(), ErrOverlap)
			}
			return fmt.Errorf("save booking: %w", err)
		}

		payment = &entity.Payment{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			BookingID:     booking.ID,
			Amount:        total,
			PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
			Status:        entity.PaymentStatusPending,
			PaymentDate:   now,
		}

		if err := tx.Payment.Create(ctx, payment); err != nil {
			return fmt.Errorf("save payment: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOverlap) || errors.Is(err, ErrNotAvailable) {
			s.log.Info("Booking rejected",
				zap.String("user_id", userID.String()),
				zap.String("booking_type", req.BookingType),
				zap.Error(err))
		}
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total", booking.TotalAmount.StringFixed(2)))

	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	data := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("load payment: %w", err)
		}
		data = append(data, response.BookingToResponse(booking, payment))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := ownedBooking(ctx, s.repo, userID, bookingID)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}

	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

// CancelBooking cancels a booking owned by userID. A completed payment is
// refunded in the same transaction.
func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	var (
		booking *entity.Booking
		payment *entity.Payment
	)

	err := s.repo.Tx.InTransaction(ctx, func(tx *repository.Repository) error {
		var err error
		booking, err = ownedBooking(ctx, tx, userID, bookingID)
		if err != nil {
			return err
		}

		if booking.Status == entity.BookingStatusCancelled {
			return fmt.Errorf("booking already cancelled: %w", ErrInvalidState)
		}

		now := s.now()
		booking.Status = entity.BookingStatusCancelled
		booking.UpdatedAt = now

		payment, err = tx.Payment.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return fmt.Errorf("load payment: %w", err)
		}
		if payment != nil && payment.Status == entity.PaymentStatusCompleted {
			payment.Status = entity.PaymentStatusRefunded
			payment.UpdatedAt = now
			if err := tx.Payment.Update(ctx, payment); err != nil {
				return fmt.Errorf("refund payment: %w", err)
			}
			booking.PaymentStatus = entity.BookingPaymentRefunded
		}

		if err := tx.Booking.Update(ctx, booking); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("payment_status", string(booking.PaymentStatus)))

	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

// PayBooking settles the pending payment of a pending booking.
func (s *bookingService) PayBooking(ctx context.Context, userID, bookingID uuid.UUID, req *request.PayBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var (
		booking *entity.Booking
		payment *entity.Payment
	)

	err := s.repo.Tx.InTransaction(ctx, func(tx *repository.Repository) error {
		var err error
		booking, err = ownedBooking(ctx, tx, userID, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != entity.BookingStatusPending {
			return fmt.Errorf("booking is %s: %w", booking.Status, ErrInvalidState)
		}

		payment, err = tx.Payment.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return fmt.Errorf("load payment: %w", err)
		}
		if payment == nil || payment.Status != entity.PaymentStatusPending {
			return fmt.Errorf("no pending payment: %w", ErrInvalidState)
		}

		now := s.now()
		txnID := "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
		if req.TransactionID != nil && strings.TrimSpace(*req.TransactionID) != "" {
			txnID = strings.TrimSpace(*req.TransactionID)
		}

		payment.Status = entity.PaymentStatusCompleted
		payment.TransactionID = &txnID
		payment.PaymentDate = now
		payment.UpdatedAt = now
		if err := tx.Payment.Update(ctx, payment); err != nil {
			return fmt.Errorf("settle payment: %w", err)
		}

		booking.Status = entity.BookingStatusConfirmed
		booking.PaymentStatus = entity.BookingPaymentPaid
		booking.UpdatedAt = now
		if err := tx.Booking.Update(ctx, booking); err != nil {
			return fmt.Errorf("confirm booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking paid",
		zap.String("booking_id", booking.ID.String()),
		zap.String("transaction_id", *payment.TransactionID))

	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

// ownedBooking hides bookings of other users behind ErrNotFound.
func ownedBooking(ctx context.Context, repo *repository.Repository, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), ErrNotFound)
	}
	return booking, nil
}

func parseBookingRequest(req *request.CreateBookingRequest) (*BookingWindow, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, invalidField("startDate", "Must be an ISO 8601 date")
	}

	var end *time.Time
	if req.EndDate != "" {
		t, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return nil, invalidField("endDate", "Must be an ISO 8601 date")
		}
		end = &t
	}

	roomID, err := optionalUUID(req.RoomID)
	if err != nil {
		return nil, invalidField("roomId", "Must be a valid UUID")
	}
	activityID, err := optionalUUID(req.ActivityID)
	if err != nil {
		return nil, invalidField("activityId", "Must be a valid UUID")
	}

	return CheckBookingShape(entity.BookingType(req.BookingType), roomID, activityID, start, end)
}

func optionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
