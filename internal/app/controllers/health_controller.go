package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/middleware"
	"github.com/yigit/collegeez/internal/pkg/logger"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and readiness endpoints
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Root reports that the process is up
// @Summary Liveness
// @Produce plain
// @Success 200 {string} string "CollegeEZNow is running"
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, "CollegeEZNow is running")
}

// Health pings MongoDB
// @Summary Readiness
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.db.Ping(ctx.Request.Context()); err != nil {
		l := logger.WithRequestID(middleware.GetRequestID(ctx))
		l.Warn().Err(err).Msg("Health check failed")

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Database unavailable")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
