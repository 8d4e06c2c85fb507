package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-loyalty/internal/data/entity"
	"hotel-loyalty/internal/data/repository"
	"hotel-loyalty/internal/dto/request"
	"hotel-loyalty/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var loyaltyNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestLoyaltyService(repo *repository.Repository) *loyaltyService {
	s := NewLoyaltyService(repo, testLogger).(*loyaltyService)
	s.now = fixedClock(loyaltyNow)
	return s
}

func TestLoyaltyService_EvaluateTier_WritesNewLevel(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)
	userID := uuid.New()
	levels := seededLevelsDesc()
	silver := levels[1]

	m.Points.On("LockUser", mock.Anything, userID).Return(nil)
	m.Points.On("SumByUserAndYear", mock.Anything, userID, 2025).Return(1500, nil)
	m.LoyaltyLevel.On("FindAllByMinPointsDesc", mock.Anything).Return(levels, nil)
	m.LoyaltyStatus.On("FindLatestByUserID", mock.Anything, userID).Return(nil, nil)
	m.LoyaltyStatus.On("Create", mock.Anything, mock.MatchedBy(func(st *entity.UserLoyaltyStatus) bool {
		return st.UserID == userID &&
			st.LevelID == silver.ID &&
			st.ActivatedAt.Equal(loyaltyNow) &&
			st.ExpiresAt.Equal(loyaltyNow.AddDate(0, 12, 0))
	})).Return(nil)

	result, err := s.EvaluateTier(context.Background(), userID, 2025)

	require.NoError(t, err)
	assert.Equal(t, 1500, result.TotalPoints)
	assert.Equal(t, "Silver", result.Level.LevelName)
	assert.True(t, result.Changed)
	assert.Nil(t, result.PreviousLevelID)
	require.NotNil(t, result.Status)
	m.LoyaltyStatus.AssertExpectations(t)
	m.Points.AssertExpectations(t)
}

func TestLoyaltyService_EvaluateTier_SameLevelIsIdempotent(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)
	userID := uuid.New()
	levels := seededLevelsDesc()
	silver := levels[1]
	current := &entity.UserLoyaltyStatus{UserID: userID, LevelID: silver.ID, ActivatedAt: loyaltyNow.AddDate(0, -1, 0)}

	m.Points.On("LockUser", mock.Anything, userID).Return(nil)
	m.Points.On("SumByUserAndYear", mock.Anything, userID, 2025).Return(1500, nil)
	m.LoyaltyLevel.On("FindAllByMinPointsDesc", mock.Anything).Return(levels, nil)
	m.LoyaltyStatus.On("FindLatestByUserID", mock.Anything, userID).Return(current, nil)

	for i := 0; i < 2; i++ {
		result, err := s.EvaluateTier(context.Background(), userID, 2025)
		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Equal(t, silver.ID, *result.PreviousLevelID)
	}

	m.LoyaltyStatus.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoyaltyService_EvaluateTier_NoQualifyingLevel(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)
	userID := uuid.New()

	m.Points.On("LockUser", mock.Anything, userID).Return(nil)
	m.Points.On("SumByUserAndYear", mock.Anything, userID, 2025).Return(-20, nil)
	m.LoyaltyLevel.On("FindAllByMinPointsDesc", mock.Anything).Return(seededLevelsDesc(), nil)

	result, err := s.EvaluateTier(context.Background(), userID, 2025)

	require.NoError(t, err)
	assert.Nil(t, result.Level)
	assert.False(t, result.Changed)
	m.LoyaltyStatus.AssertNotCalled(t, "FindLatestByUserID", mock.Anything, mock.Anything)
	m.LoyaltyStatus.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoyaltyService_AddPointsTransaction_EvaluatesInSameTransaction(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)
	userID := uuid.New()
	levels := seededLevelsDesc()
	bronze := levels[2]
	gold := levels[0]

	m.Points.On("LockUser", mock.Anything, userID).Return(nil)
	m.Points.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.PointsTransaction) bool {
		return tx.UserID == userID && tx.Points == 6000 && tx.PointsYear == 2025 && tx.ActivityType == "room_booking"
	})).Return(nil)
	m.Points.On("SumByUserAndYear", mock.Anything, userID, 2025).Return(6200, nil)
	m.LoyaltyLevel.On("FindAllByMinPointsDesc", mock.Anything).Return(levels, nil)
	m.LoyaltyStatus.On("FindLatestByUserID", mock.Anything, userID).
		Return(&entity.UserLoyaltyStatus{LevelID: bronze.ID}, nil)
	m.LoyaltyStatus.On("Create", mock.Anything, mock.MatchedBy(func(st *entity.UserLoyaltyStatus) bool {
		return st.LevelID == gold.ID
	})).Return(nil)

	resp, err := s.AddPointsTransaction(context.Background(), userID, &request.PointsTransactionRequest{
		Points:       6000,
		ActivityType: "room_booking",
	})

	require.NoError(t, err)
	assert.Equal(t, 6000, resp.Transaction.Points)
	assert.Equal(t, "Gold", resp.Tier.LevelName)
	assert.True(t, resp.Tier.Changed)
	assert.Equal(t, 6200, resp.Tier.TotalPoints)
	assert.Equal(t, 1, m.Tx.calls)
	m.Points.AssertExpectations(t)
	m.LoyaltyStatus.AssertExpectations(t)
}

func TestLoyaltyService_AddPointsTransaction_StorageErrorPropagates(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)
	userID := uuid.New()
	dbErr := errors.New("connection reset")

	m.Points.On("LockUser", mock.Anything, userID).Return(nil)
	m.Points.On("Create", mock.Anything, mock.Anything).Return(dbErr)

	_, err := s.AddPointsTransaction(context.Background(), userID, &request.PointsTransactionRequest{
		Points:       10,
		ActivityType: "spa",
	})

	assert.ErrorIs(t, err, dbErr)
	m.LoyaltyLevel.AssertNotCalled(t, "FindAllByMinPointsDesc", mock.Anything)
}

func TestLoyaltyService_AddPointsTransaction_Validation(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)

	_, err := s.AddPointsTransaction(context.Background(), uuid.New(), &request.PointsTransactionRequest{Points: 10})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, m.Tx.calls)
}

func TestLoyaltyService_AddPointsTransaction_ZeroPointsRecorded(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)
	userID := uuid.New()

	m.Points.On("LockUser", mock.Anything, userID).Return(nil)
	m.Points.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.PointsTransaction) bool {
		return tx.Points == 0 && tx.ActivityType == "adjustment"
	})).Return(nil)
	m.Points.On("SumByUserAndYear", mock.Anything, userID, 2025).Return(400, nil)
	m.LoyaltyLevel.On("FindAllByMinPointsDesc", mock.Anything).Return(seededLevelsDesc(), nil)
	m.LoyaltyStatus.On("FindLatestByUserID", mock.Anything, userID).Return(nil, nil)
	m.LoyaltyStatus.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := s.AddPointsTransaction(context.Background(), userID, &request.PointsTransactionRequest{
		Points:       0,
		ActivityType: "adjustment",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Transaction.Points)
	assert.Equal(t, "Bronze", resp.Tier.LevelName)
	m.Points.AssertExpectations(t)
}

func TestLoyaltyService_GetStatus(t *testing.T) {
	t.Run("no status yet", func(t *testing.T) {
		repo, m := newMockRepository()
		s := newTestLoyaltyService(repo)
		userID := uuid.New()

		m.Points.On("SumByUserAndYear", mock.Anything, userID, 2025).Return(0, nil)
		m.LoyaltyStatus.On("FindLatestByUserID", mock.Anything, userID).Return(nil, nil)

		status, err := s.GetStatus(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, response.NoTier, status.Tier)
		assert.Nil(t, status.ExpiresAt)
	})

	t.Run("current level", func(t *testing.T) {
		repo, m := newMockRepository()
		s := newTestLoyaltyService(repo)
		userID := uuid.New()
		silver := seededLevelsDesc()[1]
		current := &entity.UserLoyaltyStatus{
			LevelID:     silver.ID,
			ActivatedAt: loyaltyNow.AddDate(0, -2, 0),
			ExpiresAt:   loyaltyNow.AddDate(0, 10, 0),
		}

		m.Points.On("SumByUserAndYear", mock.Anything, userID, 2025).Return(1500, nil)
		m.LoyaltyStatus.On("FindLatestByUserID", mock.Anything, userID).Return(current, nil)
		m.LoyaltyLevel.On("FindByID", mock.Anything, silver.ID).Return(silver, nil)

		status, err := s.GetStatus(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "Silver", status.Tier)
		assert.Equal(t, 1500, status.TotalPoints)
		assert.Equal(t, current.ExpiresAt, *status.ExpiresAt)
	})
}

func TestLoyaltyService_GetHistory_DefaultsToCurrentYear(t *testing.T) {
	repo, m := newMockRepository()
	s := newTestLoyaltyService(repo)
	userID := uuid.New()

	m.Points.On("FindByUserAndYear", mock.Anything, userID, 2025).Return([]*entity.PointsTransaction{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Points: 300},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Points: -50},
	}, nil)

	history, err := s.GetHistory(context.Background(), userID, 0)

	require.NoError(t, err)
	assert.Equal(t, 2025, history.Year)
	assert.Equal(t, 250, history.TotalPoints)
	assert.Len(t, history.Transactions, 2)
}

func TestLoyaltyService_CreateLevel(t *testing.T) {
	t.Run("max below min", func(t *testing.T) {
		repo, _ := newMockRepository()
		s := newTestLoyaltyService(repo)

		_, err := s.CreateLevel(context.Background(), &request.LoyaltyLevelRequest{
			LevelName: "Platinum", MinPoints: 10000, MaxPoints: intPtr(500),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("defaults validity", func(t *testing.T) {
		repo, m := newMockRepository()
		s := newTestLoyaltyService(repo)

		m.LoyaltyLevel.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.LoyaltyLevel) bool {
			return l.ValidityInMonths == 12 && l.MaxPoints == nil
		})).Return(nil)

		level, err := s.CreateLevel(context.Background(), &request.LoyaltyLevelRequest{
			LevelName: "Platinum", MinPoints: 10000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Platinum", level.LevelName)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo, m := newMockRepository()
		s := newTestLoyaltyService(repo)

		m.LoyaltyLevel.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		_, err := s.CreateLevel(context.Background(), &request.LoyaltyLevelRequest{
			LevelName: "Gold", MinPoints: 5001,
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}
