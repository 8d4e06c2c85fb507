package usecase

import (
	"context"
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

type ActivityService interface {
	GetActivities(ctx context.Context, req *request.PaginatedRequest, includeUnavailable bool) (*response.PaginatedResponse[response.ActivityResponse], error)
	GetActivityByID(ctx context.Context, id uuid.UUID) (*response.ActivityResponse, error)
	CreateActivity(ctx context.Context, req *request.ActivityRequest) (*response.ActivityResponse, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
}

type activityService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewActivityService(repo *repository.Repository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
		now:  time.Now,
	}
}

func (s *activityService) GetActivities(ctx context.Context, req *request.PaginatedRequest, includeUnavailable bool) (*response.PaginatedResponse[response.ActivityResponse], error) {
	activities, err := s.repo.Activity.FindAll(ctx, req.Limit(), req.Offset(), !includeUnavailable)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	total, err := s.repo.Activity.CountAll(ctx, !includeUnavailable)
	if err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}

	data := make([]response.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		data = append(data, response.ActivityToResponse(activity))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *activityService) GetActivityByID(ctx context.Context, id uuid.UUID) (*response.ActivityResponse, error) {
	activity, err := s.findActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) CreateActivity(ctx context.Context, req *request.ActivityRequest) (*response.ActivityResponse, error) {
	if err := validateActivity(req); err != nil {
		return nil, err
	}

	now := s.now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available == nil || *req.Available,
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.Info("Activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("name", activity.Name))

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) UpdateActivity(ctx context.Context, id uuid.UUID, req *request.ActivityRequest) (*response.ActivityResponse, error) {
	if err := validateActivity(req); err != nil {
		return nil, err
	}

	activity, err := s.findActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	activity.Name = strings.TrimSpace(req.Name)
	activity.Description = req.Description
	activity.Price = req.Price
	if req.Available != nil {
		activity.Available = *req.Available
	}
	activity.UpdatedAt = s.now()

	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findActivity(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Activity.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func (s *activityService) findActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	if activity == nil {
		return nil, fmt.Errorf("activity %s: %w", id.String(), ErrNotFound)
	}
	return activity, nil
}

func validateActivity(req *request.ActivityRequest) error {
	if err := validate(req); err != nil {
		return err
	}
	if req.Price.IsNegative() {
		return invalidField("price", "Must be greater than or equal to 0")
	}
	return nil
}
