package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maooe/finance_control_app/internal/core/domain"
	"github.com/maooe/finance_control_app/internal/dto"
)

// registerMetaRoutes registers the reference-data route.
func registerMetaRoutes(rg *gin.RouterGroup) {
	rg.GET("/meta", getMeta)
}

// getMeta godoc
// @Summary Get fixed reference data
// @Description Returns the bank, payment-method and theme lists offered by entry forms
// @Tags meta
// @Produce json
// @Success 200 {object} dto.MetaResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /meta [get]
func getMeta(c *gin.Context) {
	themes := make([]string, len(domain.ThemeModes))
	for i, t := range domain.ThemeModes {
		themes[i] = string(t)
	}

	c.JSON(http.StatusOK, dto.MetaResponse{
		Banks:          domain.Banks,
		PaymentMethods: domain.PaymentMethods,
		ThemeModes:     themes,
	})
}
