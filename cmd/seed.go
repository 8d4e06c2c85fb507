package cmd

import (
	"context"
	"fmt"
	"time"

	"hotel-loyalty/internal/data/entity"
	"hotel-loyalty/internal/data/repository"
	"hotel-loyalty/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type seedUser struct {
	name, email, phone, password string
	role                         entity.UserRole
}

func seedCmd() *cobra.Command {
	var adminPassword, customerPassword string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample rooms, activities, loyalty levels and users",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.Close()

			repo := repository.NewRepository(rt.db, rt.logger)
			users := []seedUser{
				{"Admin", "admin@hotel.local", "+10000000000", adminPassword, entity.RoleAdmin},
				{"Demo Guest", "guest@hotel.local", "+10000000001", customerPassword, entity.RoleCustomer},
			}

			return repo.Tx.InTransaction(cmd.Context(), func(tx *repository.Repository) error {
				return seed(cmd.Context(), tx, users, time.Now(), rt.logger)
			})
		},
	}

	cmd.Flags().StringVar(&adminPassword, "admin-password", "admin123", "password for the seeded admin user")
	cmd.Flags().StringVar(&customerPassword, "customer-password", "guest123", "password for the seeded customer user")

	return cmd
}

// seed skips every group that already has data.
func seed(ctx context.Context, repo *repository.Repository, users []seedUser, now time.Time, log *zap.Logger) error {
	for _, u := range users {
		existing, err := repo.User.FindByEmail(ctx, u.email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := utils.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.email, err)
		}
		user := &entity.User{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:         u.name,
			Email:        u.email,
			PhoneNumber:  u.phone,
			PasswordHash: hash,
			Role:         u.role,
		}
		if err := repo.User.Create(ctx, user); err != nil {
			return err
		}
		log.Info("Seeded user", zap.String("email", u.email), zap.String("role", string(u.role)))
	}

	rooms, err := repo.Room.CountAll(ctx, false)
	if err != nil {
		return err
	}
	if rooms == 0 {
		for _, r := range []struct {
			kind, desc string
			price      int64
		}{
			{"Deluxe", "Deluxe room with lake view", 200},
			{"Suite", "Two-room suite with lounge", 350},
			{"Standard", "Standard double room", 150},
		} {
			desc := r.desc
			room := &entity.Room{
				Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
				RoomType:    r.kind,
				Description: &desc,
				Price:       decimal.NewFromInt(r.price),
				Available:   true,
			}
			if err := repo.Room.Create(ctx, room); err != nil {
				return err
			}
		}
		log.Info("Seeded rooms")
	}

	activities, err := repo.Activity.CountAll(ctx, false)
	if err != nil {
		return err
	}
	if activities == 0 {
		for _, a := range []struct {
			name, desc string
			price      int64
		}{
			{"Spa Treatment", "Full body massage and sauna", 100},
			{"Yoga Class", "Morning yoga by the lake", 50},
			{"Cooking Class", "Traditional cuisine workshop", 75},
		} {
			desc := a.desc
			activity := &entity.Activity{
				Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
				Name:        a.name,
				Description: &desc,
				Price:       decimal.NewFromInt(a.price),
				Available:   true,
			}
			if err := repo.Activity.Create(ctx, activity); err != nil {
				return err
			}
		}
		log.Info("Seeded activities")
	}

	levels, err := repo.LoyaltyLevel.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		bronzeMax, silverMax := 1000, 5000
		for _, l := range []struct {
			name     string
			min      int
			max      *int
			validity int
		}{
			{"Bronze", 0, &bronzeMax, 12},
			{"Silver", 1001, &silverMax, 12},
			{"Gold", 5001, nil, 12},
		} {
			level := &entity.LoyaltyLevel{
				BaseNoDelete:     entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
				LevelName:        l.name,
				MinPoints:        l.min,
				MaxPoints:        l.max,
				ValidityInMonths: l.validity,
			}
			if err := repo.LoyaltyLevel.Create(ctx, level); err != nil {
				return err
			}
		}
		log.Info("Seeded loyalty levels")
	}

	return nil
}
