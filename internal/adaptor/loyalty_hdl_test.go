package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-loyalty/internal/data/entity"
	"hotel-loyalty/internal/dto/request"
	"hotel-loyalty/internal/dto/response"
	"hotel-loyalty/internal/usecase"
	"hotel-loyalty/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockLoyaltyService struct{ mock.Mock }

func (m *MockLoyaltyService) AddPointsTransaction(ctx context.Context, userID uuid.UUID, req *request.PointsTransactionRequest) (*response.PointsTransactionResultResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PointsTransactionResultResponse), args.Error(1)
}

func (m *MockLoyaltyService) EvaluateTier(ctx context.Context, userID uuid.UUID, year int) (*usecase.TierResult, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TierResult), args.Error(1)
}

func (m *MockLoyaltyService) GetStatus(ctx context.Context, userID uuid.UUID) (*response.LoyaltyStatusResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LoyaltyStatusResponse), args.Error(1)
}

func (m *MockLoyaltyService) GetHistory(ctx context.Context, userID uuid.UUID, year int) (*response.PointsHistoryResponse, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PointsHistoryResponse), args.Error(1)
}

func (m *MockLoyaltyService) GetLevels(ctx context.Context) ([]response.LoyaltyLevelResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.LoyaltyLevelResponse), args.Error(1)
}

func (m *MockLoyaltyService) CreateLevel(ctx context.Context, req *request.LoyaltyLevelRequest) (*response.LoyaltyLevelResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LoyaltyLevelResponse), args.Error(1)
}

func loyaltyRouter(svc usecase.LoyaltyService, userID uuid.UUID) http.Handler {
	h := NewLoyaltyHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := utils.SetUserContext(req.Context(), userID, string(entity.RoleCustomer))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/api/loyalty/transaction", h.AddPointsTransaction)
	r.Get("/api/loyalty/status", h.GetStatus)
	r.Get("/api/loyalty/history", h.GetHistory)
	return r
}

func TestLoyaltyHandler_AddPointsTransaction(t *testing.T) {
	svc := new(MockLoyaltyService)
	userID := uuid.New()

	svc.On("AddPointsTransaction", mock.Anything, userID, mock.MatchedBy(func(req *request.PointsTransactionRequest) bool {
		return req.Points == 1500 && req.ActivityType == "room_booking"
	})).Return(&response.PointsTransactionResultResponse{
		Transaction: response.PointsTransactionResponse{Points: 1500},
		Tier:        response.TierResponse{TotalPoints: 1500, LevelName: "Silver", Changed: true},
	}, nil)

	rec := httptest.NewRecorder()
	loyaltyRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/loyalty/transaction",
		strings.NewReader(`{"points":1500,"activityType":"room_booking"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	data, ok := decodeEnvelope(t, rec).Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1500), data["points"])
	assert.NotContains(t, data, "tier")
	svc.AssertExpectations(t)
}

func TestLoyaltyHandler_AddPointsTransaction_ZeroPoints(t *testing.T) {
	svc := new(MockLoyaltyService)
	userID := uuid.New()
	svc.On("AddPointsTransaction", mock.Anything, userID, mock.MatchedBy(func(req *request.PointsTransactionRequest) bool {
		return req.Points == 0
	})).Return(&response.PointsTransactionResultResponse{}, nil)

	rec := httptest.NewRecorder()
	loyaltyRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/loyalty/transaction",
		strings.NewReader(`{"points":0,"activityType":"adjustment"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestLoyaltyHandler_AddPointsTransaction_NonIntegerPoints(t *testing.T) {
	svc := new(MockLoyaltyService)
	rec := httptest.NewRecorder()

	loyaltyRouter(svc, uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/loyalty/transaction",
		strings.NewReader(`{"points":"lots","activityType":"spa"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "AddPointsTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoyaltyHandler_GetStatus_NoTier(t *testing.T) {
	svc := new(MockLoyaltyService)
	userID := uuid.New()
	svc.On("GetStatus", mock.Anything, userID).Return(&response.LoyaltyStatusResponse{Tier: response.NoTier, Year: 2025}, nil)

	rec := httptest.NewRecorder()
	loyaltyRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loyalty/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec).Data.(map[string]any)
	assert.Equal(t, "None", data["tier"])
}

func TestLoyaltyHandler_GetHistory_Year(t *testing.T) {
	svc := new(MockLoyaltyService)
	userID := uuid.New()
	svc.On("GetHistory", mock.Anything, userID, 2024).Return(&response.PointsHistoryResponse{Year: 2024}, nil)
	svc.On("GetHistory", mock.Anything, userID, 0).Return(&response.PointsHistoryResponse{Year: 2025}, nil)

	rec := httptest.NewRecorder()
	loyaltyRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loyalty/history?year=2024", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	loyaltyRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loyalty/history", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	loyaltyRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loyalty/history?year=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertExpectations(t)
}
