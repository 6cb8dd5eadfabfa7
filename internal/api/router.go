package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stargrid/stargrid-go/internal/api/apierr"
	"github.com/stargrid/stargrid-go/internal/api/handler"
	"github.com/stargrid/stargrid-go/internal/api/response"
	"github.com/stargrid/stargrid-go/internal/middleware"
	"github.com/stargrid/stargrid-go/internal/services/bot"
	"github.com/stargrid/stargrid-go/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	BotService     *bot.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BotService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, panicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game lifecycle
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/restore", gameHandler.Restore).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/snapshot", gameHandler.Snapshot).Methods(http.MethodGet)

	// Turn commands
	api.HandleFunc("/games/{id}/place", gameHandler.Place).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/discard-board", gameHandler.DiscardBoard).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/discard-hand", gameHandler.DiscardHand).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/draw-place", gameHandler.DrawPlace).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/claim", gameHandler.Claim).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/end-turn", gameHandler.EndTurn).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/ack-auto-draw", gameHandler.AckAutoDraw).Methods(http.MethodPost)

	// CPU opponent
	api.HandleFunc("/games/{id}/cpu-turn", gameHandler.CPUTurn).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
