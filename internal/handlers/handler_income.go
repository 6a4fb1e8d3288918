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

// incomeHandler handles HTTP requests related to income entries.
type incomeHandler struct {
	store portssvc.StoreSvcFacade
}

// registerIncomeRoutes registers routes related to income entries.
func registerIncomeRoutes(rg *gin.RouterGroup, store portssvc.StoreSvcFacade) {
	h := &incomeHandler{store: store}

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Record a new income entry
// @Description Adds an income entry to the front of the collection
// @Tags incomes
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} domain.Income
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create income"
// @Security BearerAuth
// @Router /incomes [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.store.AddIncome(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to add income", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create income"})
		}
		return
	}

	c.JSON(http.StatusCreated, income)
}

// listIncomes godoc
// @Summary List income entries
// @Description Returns every income entry, most recent first
// @Tags incomes
// @Produce json
// @Success 200 {object} dto.ListIncomesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	incomes := h.store.ListIncomes(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListIncomesResponse{Incomes: incomes})
}

// deleteIncome godoc
// @Summary Delete an income entry
// @Description Removes the income entry with the given id; unknown ids are ignored
// @Tags incomes
// @Produce json
// @Param id path string true "Income ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to delete income"
// @Security BearerAuth
// @Router /incomes/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	if err := h.store.DeleteIncome(c.Request.Context(), incomeID); err != nil {
		logger.Error("Failed to delete income", slog.String("error", err.Error()), slog.String("income_id", incomeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete income"})
		return
	}

	c.Status(http.StatusNoContent)
}
