package wire

import (
	"net/http"

	"hotel-loyalty/internal/adaptor"
	"hotel-loyalty/internal/data/repository"
	"hotel-loyalty/internal/usecase"
	"hotel-loyalty/pkg/middleware"
	"hotel-loyalty/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// mw is a chi-compatible middleware.
type mw = func(http.Handler) http.Handler

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router from the repository set.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	auth := middleware.Auth(config.JWT, repo.User, logger)
	admin := middleware.Admin(logger)

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, auth, admin)
	wireCatalog(r, handler.Room, handler.Activity, auth, admin)
	wireBooking(r, handler.Booking, auth)
	wireLoyalty(r, handler.Loyalty, auth, admin)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
