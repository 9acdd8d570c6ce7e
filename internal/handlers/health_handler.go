package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	serviceName    = "LearnAnySkills API"
	serviceVersion = "1.0.0"
	healthTimeout  = 2 * time.Second
)

// DatabasePinger is implemented by *sql.DB
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// RedisPinger is implemented by *redis.Client
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// InfoResponse represents the body of GET /
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Status  string `json:"status"`
}

// HealthResponse represents the body of GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// HealthHandler serves the service info and health endpoints
type HealthHandler struct {
	BaseHandler
	db    DatabasePinger
	redis RedisPinger
}

// NewHealthHandler creates a new health handler
//
// redis may be nil when background jobs run in-process.
func NewHealthHandler(db DatabasePinger, redis RedisPinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redis:       redis,
		BaseHandler: newBaseHandler(logger),
	}
}

// RegisterRoutes registers the info and health routes
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Info)
	r.Get("/health", h.Health)
}

// Info handles GET /
// @Summary API information
// @Tags health
// @Produce json
// @Success 200 {object} InfoResponse
// @Router / [get]
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, InfoResponse{
		Message: "Welcome to " + serviceName,
		Version: serviceVersion,
		Docs:    "/swagger/index.html",
		Status:  "active",
	})
}

// Health handles GET /health
// @Summary Health check
// @Description Ping the database and, when configured, Redis
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
		Checks:  map[string]string{},
	}
	status := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("database health check failed", zap.Error(err))
		resp.Checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	} else {
		resp.Checks["database"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.logger.Warn("redis health check failed", zap.Error(err))
			resp.Checks["redis"] = "unavailable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Checks["redis"] = "ok"
		}
	}

	if status != http.StatusOK {
		resp.Status = "unhealthy"
	}
	h.respondJSON(w, status, resp)
}
