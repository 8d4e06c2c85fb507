package usecase

import (
	"hotel-loyalty/internal/data/repository"
	"hotel-loyalty/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Room     RoomService
	Activity ActivityService
	Booking  BookingService
	Loyalty  LoyaltyService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Room:     NewRoomService(repo, log),
		Activity: NewActivityService(repo, log),
		Booking:  NewBookingService(repo, log),
		Loyalty:  NewLoyaltyService(repo, log),
	}
}
