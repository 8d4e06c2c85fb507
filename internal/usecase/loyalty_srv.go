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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LoyaltyService interface {
	// AddPointsTransaction records points and re-evaluates the user's tier
	// for the current year in the same transaction.
	AddPointsTransaction(ctx context.Context, userID uuid.UUID, req *request.PointsTransactionRequest) (*response.PointsTransactionResultResponse, error)
	EvaluateTier(ctx context.Context, userID uuid.UUID, year int) (*TierResult, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*response.LoyaltyStatusResponse, error)
	GetHistory(ctx context.Context, userID uuid.UUID, year int) (*response.PointsHistoryResponse, error)
	GetLevels(ctx context.Context) ([]response.LoyaltyLevelResponse, error)
	CreateLevel(ctx context.Context, req *request.LoyaltyLevelRequest) (*response.LoyaltyLevelResponse, error)
}

// TierResult describes one tier evaluation. Level is nil when no configured
// level contains TotalPoints. Status is set only when a new row was written.
type TierResult struct {
	TotalPoints     int
	Level           *entity.LoyaltyLevel
	PreviousLevelID *uuid.UUID
	Changed         bool
	Status          *entity.UserLoyaltyStatus
}

type loyaltyService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewLoyaltyService(repo *repository.Repository, log *zap.Logger) LoyaltyService {
	return &loyaltyService{
		repo: repo,
		log:  log.With(zap.String("service", "loyalty")),
		now:  time.Now,
	}
}

func (s *loyaltyService) AddPointsTransaction(ctx context.Context, userID uuid.UUID, req *request.PointsTransactionRequest) (*response.PointsTransactionResultResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := s.now()
	txn := &entity.PointsTransaction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:          userID,
		Points:          req.Points,
		ActivityType:    strings.TrimSpace(req.ActivityType),
		Description:     req.Description,
		TransactionDate: now,
		PointsYear:      now.Year(),
	}

	var result *TierResult
	err := s.repo.Tx.InTransaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Points.LockUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.Points.Create(ctx, txn); err != nil {
			return fmt.Errorf("save points transaction: %w", err)
		}

		var err error
		result, err = s.evaluateTier(ctx, tx, userID, txn.PointsYear)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Points recorded",
		zap.String("user_id", userID.String()),
		zap.Int("points", txn.Points),
		zap.Int("total", result.TotalPoints),
		zap.Bool("tier_changed", result.Changed))

	return &response.PointsTransactionResultResponse{
		Transaction: response.PointsTransactionToResponse(txn),
		Tier:        tierToResponse(result),
	}, nil
}

func (s *loyaltyService) EvaluateTier(ctx context.Context, userID uuid.UUID, year int) (*TierResult, error) {
	var result *TierResult
	err := s.repo.Tx.InTransaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Points.LockUser(ctx, userID); err != nil {
			return err
		}
		var err error
		result, err = s.evaluateTier(ctx, tx, userID, year)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// evaluateTier must run inside a transaction holding the user's points lock.
func (s *loyaltyService) evaluateTier(ctx context.Context, tx *repository.Repository, userID uuid.UUID, year int) (*TierResult, error) {
	total, err := tx.Points.SumByUserAndYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	levels, err := tx.LoyaltyLevel.FindAllByMinPointsDesc(ctx)
	if err != nil {
		return nil, err
	}

	result := &TierResult{TotalPoints: total, Level: SelectLevel(levels, total)}
	if result.Level == nil {
		s.log.Debug("No qualifying loyalty level",
			zap.String("user_id", userID.String()),
			zap.Int("total", total))
		return result, nil
	}

	latest, err := tx.LoyaltyStatus.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		prev := latest.LevelID
		result.PreviousLevelID = &prev
	}

	if !NeedsNewStatus(latest, result.Level) {
		return result, nil
	}

	now := s.now()
	status := &entity.UserLoyaltyStatus{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:      userID,
		LevelID:     result.Level.ID,
		ActivatedAt: now,
		ExpiresAt:   LevelExpiry(result.Level, now),
	}
	if err := tx.LoyaltyStatus.Create(ctx, status); err != nil {
		return nil, err
	}

	result.Changed = true
	result.Status = status

	s.log.Info("Loyalty tier changed",
		zap.String("user_id", userID.String()),
		zap.String("level", result.Level.LevelName),
		zap.Int("total", total))

	return result, nil
}

func (s *loyaltyService) GetStatus(ctx context.Context, userID uuid.UUID) (*response.LoyaltyStatusResponse, error) {
	year := s.now().Year()

	total, err := s.repo.Points.SumByUserAndYear(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("sum points: %w", err)
	}

	resp := &response.LoyaltyStatusResponse{
		Tier:        response.NoTier,
		Year:        year,
		TotalPoints: total,
	}

	latest, err := s.repo.LoyaltyStatus.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load loyalty status: %w", err)
	}
	if latest == nil {
		return resp, nil
	}

	level, err := s.repo.LoyaltyLevel.FindByID(ctx, latest.LevelID)
	if err != nil {
		return nil, fmt.Errorf("load loyalty level: %w", err)
	}

	levelID := latest.LevelID.String()
	resp.LevelID = &levelID
	resp.ActivatedAt = &latest.ActivatedAt
	resp.ExpiresAt = &latest.ExpiresAt
	if level != nil {
		resp.Tier = level.LevelName
	}

	return resp, nil
}

func (s *loyaltyService) GetHistory(ctx context.Context, userID uuid.UUID, year int) (*response.PointsHistoryResponse, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	txns, err := s.repo.Points.FindByUserAndYear(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("load points history: %w", err)
	}

	resp := &response.PointsHistoryResponse{
		Year:         year,
		Transactions: make([]response.PointsTransactionResponse, 0, len(txns)),
	}
	for _, t := range txns {
		resp.TotalPoints += t.Points
		resp.Transactions = append(resp.Transactions, response.PointsTransactionToResponse(t))
	}

	return resp, nil
}

func (s *loyaltyService) GetLevels(ctx context.Context) ([]response.LoyaltyLevelResponse, error) {
	levels, err := s.repo.LoyaltyLevel.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loyalty levels: %w", err)
	}

	data := make([]response.LoyaltyLevelResponse, 0, len(levels))
	for _, l := range levels {
		data = append(data, response.LoyaltyLevelToResponse(l))
	}
	return data, nil
}

func (s *loyaltyService) CreateLevel(ctx context.Context, req *request.LoyaltyLevelRequest) (*response.LoyaltyLevelResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.MaxPoints != nil && *req.MaxPoints < req.MinPoints {
		return nil, invalidField("maxPoints", "Must be greater than or equal to minPoints")
	}

	validity := req.ValidityInMonths
	if validity == 0 {
		validity = defaultValidityMonths
	}

	now := s.now()
	level := &entity.LoyaltyLevel{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LevelName:        strings.TrimSpace(req.LevelName),
		MinPoints:        req.MinPoints,
		MaxPoints:        req.MaxPoints,
		ValidityInMonths: validity,
	}

	if err := s.repo.LoyaltyLevel.Create(ctx, level); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("level %s: %w", level.LevelName, ErrConflict)
		}
		return nil, fmt.Errorf("create loyalty level: %w", err)
	}

	s.log.Info("Loyalty level created",
		zap.String("level", level.LevelName),
		zap.Int("min_points", level.MinPoints))

	resp := response.LoyaltyLevelToResponse(level)
	return &resp, nil
}

func tierToResponse(r *TierResult) response.TierResponse {
	resp := response.TierResponse{
		TotalPoints: r.TotalPoints,
		LevelName:   response.NoTier,
		Changed:     r.Changed,
	}
	if r.Level != nil {
		resp.LevelName = r.Level.LevelName
	}
	if r.Status != nil {
		resp.ExpiresAt = &r.Status.ExpiresAt
	}
	return resp
}
