package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"attendancehub/internal/delivery/http/helpers"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	CommitID string `json:"commit_id"`
}

// HealthSuccessResponse is the response envelope for GET /health.
type HealthSuccessResponse struct {
	Data  HealthResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type HealthController struct {
	Logger   *slog.Logger
	DB       Pinger
	CommitID string
}

func NewHealthController(logger *slog.Logger, db Pinger, commitID string) *HealthController {
	return &HealthController{Logger: logger, DB: db, CommitID: commitID}
}

// Health godoc
// @Summary Service health
// @Description Reports whether the database is reachable and which commit is running.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthSuccessResponse "status ok"
// @Success 503 {object} controllers.HealthSuccessResponse "status unavailable"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", CommitID: c.CommitID}
	status := http.StatusOK
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := c.DB.PingContext(ctx); err != nil {
			c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}
	helpers.WriteJSONSuccess(w, status, resp)
}
