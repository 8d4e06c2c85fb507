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

type RoomService interface {
	GetRooms(ctx context.Context, req *request.PaginatedRequest, includeUnavailable bool) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, id uuid.UUID) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *request.RoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
		now:  time.Now,
	}
}

func (s *roomService) GetRooms(ctx context.Context, req *request.PaginatedRequest, includeUnavailable bool) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms, err := s.repo.Room.FindAll(ctx, req.Limit(), req.Offset(), !includeUnavailable)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	total, err := s.repo.Room.CountAll(ctx, !includeUnavailable)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	data := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, response.RoomToResponse(room))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, id uuid.UUID) (*response.RoomResponse, error) {
	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if err := validateRoom(req); err != nil {
		return nil, err
	}

	now := s.now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomType:    strings.TrimSpace(req.RoomType),
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available == nil || *req.Available,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_type", room.RoomType))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, id uuid.UUID, req *request.RoomRequest) (*response.RoomResponse, error) {
	if err := validateRoom(req); err != nil {
		return nil, err
	}

	room, err := s.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	room.RoomType = strings.TrimSpace(req.RoomType)
	room.Description = req.Description
	room.Price = req.Price
	if req.Available != nil {
		room.Available = *req.Available
	}
	room.UpdatedAt = s.now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findRoom(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Room.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

func (s *roomService) findRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", id.String(), ErrNotFound)
	}
	return room, nil
}

func validateRoom(req *request.RoomRequest) error {
	if err := validate(req); err != nil {
		return err
	}
	if req.Price.IsNegative() {
		return invalidField("price", "Must be greater than or equal to 0")
	}
	return nil
}
