package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-loyalty/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrBookingConflict is returned when the room exclusion constraint rejects a booking.
var ErrBookingConflict = errors.New("room already booked for an overlapping period")

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// ErrDuplicate is returned when a unique constraint rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

type Repository struct {
	User          UserRepository
	Room          RoomRepository
	Activity      ActivityRepository
	Booking       BookingRepository
	Payment       PaymentRepository
	LoyaltyLevel  LoyaltyLevelRepository
	LoyaltyStatus LoyaltyStatusRepository
	Points        PointsRepository

	Tx Transactor
}

// Transactor runs fn with a Repository bound to one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(tx *Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.Tx = &pgxTransactor{db: db, base: log, log: log.With(zap.String("repository", "tx"))}
	return repo
}

func newRepository(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(q, log),
		Room:          NewRoomRepository(q, log),
		Activity:      NewActivityRepository(q, log),
		Booking:       NewBookingRepository(q, log),
		Payment:       NewPaymentRepository(q, log),
		LoyaltyLevel:  NewLoyaltyLevelRepository(q, log),
		LoyaltyStatus: NewLoyaltyStatusRepository(q, log),
		Points:        NewPointsRepository(q, log),
	}
}

type pgxTransactor struct {
	db   database.PgxIface
	base *zap.Logger
	log  *zap.Logger
}

func (t *pgxTransactor) InTransaction(ctx context.Context, fn func(tx *Repository) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				t.log.Error("Rollback after panic failed", zap.Error(rbErr))
			}
			panic(p)
		}
	}()

	txRepo := newRepository(tx, t.base)
	txRepo.Tx = joinedTransactor{repo: txRepo}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			t.log.Error("Rollback failed", zap.Error(rbErr), zap.NamedError("cause", err))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// joinedTransactor lets code already inside a transaction call InTransaction
// again; the inner call joins the outer transaction.
type joinedTransactor struct {
	repo *Repository
}

func (j joinedTransactor) InTransaction(_ context.Context, fn func(tx *Repository) error) error {
	return fn(j.repo)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
