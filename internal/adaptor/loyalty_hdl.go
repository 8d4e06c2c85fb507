package adaptor

import (
	"net/http"
	"strconv"

	"hotel-loyalty/internal/dto/request"
	"hotel-loyalty/internal/usecase"
	"hotel-loyalty/pkg/utils"

	"go.uber.org/zap"
)

type LoyaltyHandler struct {
	service usecase.LoyaltyService
	log     *zap.Logger
}

func NewLoyaltyHandler(service usecase.LoyaltyService, log *zap.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		service: service,
		log:     log.With(zap.String("handler", "loyalty")),
	}
}

// AddPointsTransaction handles POST /api/loyalty/transaction (protected)
func (h *LoyaltyHandler) AddPointsTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.PointsTransactionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.AddPointsTransaction(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add points transaction")
		return
	}

	utils.ResponseCreated(w, "Points transaction recorded", result.Transaction)
}

// GetStatus handles GET /api/loyalty/status (protected)
func (h *LoyaltyHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	status, err := h.service.GetStatus(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get loyalty status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// GetHistory handles GET /api/loyalty/history?year= (protected)
func (h *LoyaltyHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.ResponseBadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	history, err := h.service.GetHistory(r.Context(), userID, year)
	if err != nil {
		handleServiceError(w, h.log, err, "get points history")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}

// GetLevels handles GET /api/loyalty/levels
func (h *LoyaltyHandler) GetLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.GetLevels(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get loyalty levels")
		return
	}

	utils.ResponseSuccess(w, "success", levels)
}

// CreateLevel handles POST /api/admin/loyalty/levels
func (h *LoyaltyHandler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	var req request.LoyaltyLevelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	level, err := h.service.CreateLevel(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create loyalty level")
		return
	}

	utils.ResponseCreated(w, "Loyalty level created successfully", level)
}
