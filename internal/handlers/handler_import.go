package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maooe/finance_control_app/internal/apperrors"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/middleware"
)

// maxImportBytes caps the accepted backup size.
const maxImportBytes = 8 << 20

// importHandler handles JSON backup restores.
type importHandler struct {
	store portssvc.StoreSvcFacade
}

// registerImportRoutes registers the backup import route.
func registerImportRoutes(rg *gin.RouterGroup, store portssvc.StoreSvcFacade) {
	h := &importHandler{store: store}

	rg.POST("/import", h.importSnapshot)
}

// importSnapshot godoc
// @Summary Import a JSON backup
// @Description Applies a backup document: present top-level collections replace their local counterpart wholesale, absent ones are left untouched. A malformed document applies nothing.
// @Tags import
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Malformed backup document"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to apply backup"
// @Security BearerAuth
// @Router /import [post]
func (h *importHandler) importSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	if err := h.store.ImportSnapshot(c.Request.Context(), raw); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected malformed backup document", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed backup document"})
		} else {
			logger.Error("Failed to apply backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply backup"})
		}
		return
	}

	logger.Info("Backup imported")
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}
