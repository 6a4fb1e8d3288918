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

// assistantHandler handles the financial assistant queries.
type assistantHandler struct {
	assistant portssvc.AssistantSvcFacade
}

// registerAssistantRoutes registers the assistant routes.
func registerAssistantRoutes(rg *gin.RouterGroup, assistant portssvc.AssistantSvcFacade) {
	h := &assistantHandler{assistant: assistant}

	rg.POST("/assistant/query", h.query)
}

// query godoc
// @Summary Ask the financial assistant
// @Description Answers a free-text question over the user's current financial data. Upstream failures degrade to a fixed apology answer, not an error status.
// @Tags assistant
// @Accept json
// @Produce json
// @Param query body dto.AssistantQueryRequest true "Question"
// @Success 200 {object} dto.AssistantQueryResponse
// @Failure 400 {object} ErrorResponse "Empty question"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /assistant/query [post]
func (h *assistantHandler) query(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssistantQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for assistant query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	answer, err := h.assistant.Query(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Assistant query failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to answer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AssistantQueryResponse{Answer: answer})
}
