package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maooe/finance_control_app/internal/apperrors"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/dto"
	"github.com/maooe/finance_control_app/internal/middleware"
)

// syncHandler handles the manual remote-mirror operations. The debounced
// background push needs no route; these endpoints are the explicit push and
// the full restore.
type syncHandler struct {
	sync portssvc.SyncSvcFacade
}

// registerSyncRoutes registers the manual sync routes.
func registerSyncRoutes(rg *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &syncHandler{sync: sync}

	group := rg.Group("/sync")
	{
		group.POST("/push", h.push)
		group.POST("/pull", h.pull)
	}
}

// push godoc
// @Summary Push the current snapshot to the remote mirror now
// @Description Bypasses the debounce timer and pushes immediately
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncStatusResponse
// @Failure 400 {object} ErrorResponse "No sync endpoint configured"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Remote endpoint unreachable"
// @Security BearerAuth
// @Router /sync/push [post]
func (h *syncHandler) push(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.sync.PushNow(c.Request.Context()); err != nil {
		h.respondSyncError(c, logger, err, "push")
		return
	}

	c.JSON(http.StatusOK, dto.SyncStatusResponse{Status: "pushed"})
}

// pull godoc
// @Summary Restore local state from the remote mirror
// @Description Fetches the remote snapshot and replaces every local collection with it
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncStatusResponse
// @Failure 400 {object} ErrorResponse "No sync endpoint configured"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Remote endpoint unreachable or payload malformed"
// @Security BearerAuth
// @Router /sync/pull [post]
func (h *syncHandler) pull(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.sync.Pull(c.Request.Context()); err != nil {
		h.respondSyncError(c, logger, err, "pull")
		return
	}

	c.JSON(http.StatusOK, dto.SyncStatusResponse{Status: "pulled"})
}

func (h *syncHandler) respondSyncError(c *gin.Context, logger *slog.Logger, err error, op string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No sync endpoint configured"})
	case errors.Is(err, apperrors.ErrRemoteUnavailable):
		logger.Warn("Remote mirror unreachable", slog.String("op", op), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Remote endpoint unreachable"})
	case errors.Is(err, apperrors.ErrRemotePayload):
		logger.Warn("Remote mirror returned a malformed payload", slog.String("op", op), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Remote payload malformed"})
	default:
		logger.Error("Sync operation failed", slog.String("op", op), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Sync failed"})
	}
}
