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

// preferenceHandler handles HTTP requests related to user preferences.
type preferenceHandler struct {
	store portssvc.StoreSvcFacade
}

// registerPreferenceRoutes registers routes related to user preferences.
func registerPreferenceRoutes(rg *gin.RouterGroup, store portssvc.StoreSvcFacade) {
	h := &preferenceHandler{store: store}

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.getPreferences)
		prefs.PUT("", h.updatePreferences)
	}
}

// getPreferences godoc
// @Summary Get user preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferenceHandler) getPreferences(c *gin.Context) {
	prefs := h.store.GetPreferences(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// updatePreferences godoc
// @Summary Update user preferences
// @Description Applies the provided fields; absent fields keep their value
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body dto.UpdatePreferencesRequest true "Fields to update"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or unknown theme"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to update preferences"
// @Security BearerAuth
// @Router /preferences [put]
func (h *preferenceHandler) updatePreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreferences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated := req.Apply(h.store.GetPreferences(c.Request.Context()))
	if err := h.store.UpdatePreferences(c.Request.Context(), updated); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update preferences", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update preferences"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(updated))
}
