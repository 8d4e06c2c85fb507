package usecase

import (
	"context"
	"time"

	"hotel-loyalty/internal/data/entity"
	"hotel-loyalty/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// ===========================
// Mocks
// ===========================

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockRoomRepository struct{ mock.Mock }

func (m *MockRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAll(ctx context.Context, limit, offset int, onlyAvailable bool) ([]*entity.Room, error) {
	args := m.Called(ctx, limit, offset, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Room), args.Error(1)
}

func (m *MockRoomRepository) CountAll(ctx context.Context, onlyAvailable bool) (int64, error) {
	args := m.Called(ctx, onlyAvailable)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *entity.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindAll(ctx context.Context, limit, offset int, onlyAvailable bool) ([]*entity.Activity, error) {
	args := m.Called(ctx, limit, offset, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) CountAll(ctx context.Context, onlyAvailable bool) (int64, error) {
	args := m.Called(ctx, onlyAvailable)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) FindConflictingRoomBookings(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	args := m.Called(ctx, roomID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

type MockLoyaltyLevelRepository struct{ mock.Mock }

func (m *MockLoyaltyLevelRepository) Create(ctx context.Context, level *entity.LoyaltyLevel) error {
	return m.Called(ctx, level).Error(0)
}

func (m *MockLoyaltyLevelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyLevel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LoyaltyLevel), args.Error(1)
}

func (m *MockLoyaltyLevelRepository) FindAll(ctx context.Context) ([]*entity.LoyaltyLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LoyaltyLevel), args.Error(1)
}

func (m *MockLoyaltyLevelRepository) FindAllByMinPointsDesc(ctx context.Context) ([]*entity.LoyaltyLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LoyaltyLevel), args.Error(1)
}

type MockLoyaltyStatusRepository struct{ mock.Mock }

func (m *MockLoyaltyStatusRepository) Create(ctx context.Context, status *entity.UserLoyaltyStatus) error {
	return m.Called(ctx, status).Error(0)
}

func (m *MockLoyaltyStatusRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserLoyaltyStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserLoyaltyStatus), args.Error(1)
}

type MockPointsRepository struct{ mock.Mock }

func (m *MockPointsRepository) Create(ctx context.Context, tx *entity.PointsTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPointsRepository) SumByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int, error) {
	args := m.Called(ctx, userID, year)
	return args.Int(0), args.Error(1)
}

func (m *MockPointsRepository) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.PointsTransaction, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PointsTransaction), args.Error(1)
}

func (m *MockPointsRepository) LockUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockTransactor runs fn against the same mock-backed repository and
// records how many transactions were opened and the error that ended the last one.
type MockTransactor struct {
	repo    *repository.Repository
	calls   int
	lastErr error
}

func (m *MockTransactor) InTransaction(_ context.Context, fn func(tx *repository.Repository) error) error {
	m.calls++
	m.lastErr = fn(m.repo)
	return m.lastErr
}

type mockRepos struct {
	User          *MockUserRepository
	Room          *MockRoomRepository
	Activity      *MockActivityRepository
	Booking       *MockBookingRepository
	Payment       *MockPaymentRepository
	LoyaltyLevel  *MockLoyaltyLevelRepository
	LoyaltyStatus *MockLoyaltyStatusRepository
	Points        *MockPointsRepository
	Tx            *MockTransactor
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		User:          new(MockUserRepository),
		Room:          new(MockRoomRepository),
		Activity:      new(MockActivityRepository),
		Booking:       new(MockBookingRepository),
		Payment:       new(MockPaymentRepository),
		LoyaltyLevel:  new(MockLoyaltyLevelRepository),
		LoyaltyStatus: new(MockLoyaltyStatusRepository),
		Points:        new(MockPointsRepository),
	}
	repo := &repository.Repository{
		User:          m.User,
		Room:          m.Room,
		Activity:      m.Activity,
		Booking:       m.Booking,
		Payment:       m.Payment,
		LoyaltyLevel:  m.LoyaltyLevel,
		LoyaltyStatus: m.LoyaltyStatus,
		Points:        m.Points,
	}
	m.Tx = &MockTransactor{repo: repo}
	repo.Tx = m.Tx
	return repo, m
}

var testLogger = zap.NewNop()

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }
