package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wanderlens/pkg/utils"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthController struct {
	ping Pinger
}

func NewHealthController(ping Pinger) *HealthController {
	return &HealthController{ping: ping}
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	utils.RespondSuccess(c, gin.H{"database": "ok"}, "ok")
}
