package wire

import (
	"net/http"

	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/internal/notification"
	"event-booking/internal/scheduler"
	"event-booking/internal/usecase"
	"event-booking/pkg/middleware"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application.
type App struct {
	Router  *chi.Mux
	Sweeper *scheduler.Sweeper
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	notifier, err := notification.NewTelegramNotifier(config.Telegram.BotToken, logger)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)
	sweeper := scheduler.NewSweeper(service.Booking, config.Scheduler.SweepInterval, logger)

	return &App{
		Router:  router,
		Sweeper: sweeper,
	}, nil
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireUser(r, handler.User, handler.Booking)
	wireEvent(r, handler.Event, handler.Booking)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
