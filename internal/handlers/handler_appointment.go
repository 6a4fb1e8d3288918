package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maooe/finance_control_app/internal/core/domain"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/dto"
	"github.com/maooe/finance_control_app/internal/middleware"
)

// appointmentHandler handles HTTP requests related to calendar entries.
type appointmentHandler struct {
	store portssvc.StoreSvcFacade
}

// registerAppointmentRoutes registers routes related to calendar entries.
func registerAppointmentRoutes(rg *gin.RouterGroup, store portssvc.StoreSvcFacade) {
	h := &appointmentHandler{store: store}

	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.createAppointment)
		appointments.GET("", h.listAppointments)
		appointments.DELETE("/:id", h.deleteAppointment)
	}
}

// createAppointment godoc
// @Summary Create a calendar entry
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body dto.CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} domain.Appointment
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create appointment"
// @Security BearerAuth
// @Router /appointments [post]
func (h *appointmentHandler) createAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAppointment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	appointment, err := h.store.AddAppointment(c.Request.Context(), req.ToDomain())
	if err != nil {
		logger.Error("Failed to add appointment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// listAppointments godoc
// @Summary List calendar entries
// @Description Returns every appointment, optionally filtered to one date
// @Tags appointments
// @Produce json
// @Param date query string false "Filter to a single date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListAppointmentsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /appointments [get]
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	var params dto.ListAppointmentsParams
	_ = c.ShouldBindQuery(&params)

	appointments := h.store.ListAppointments(c.Request.Context())
	if params.Date != "" {
		filtered := make([]domain.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.Date == params.Date {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	c.JSON(http.StatusOK, dto.ListAppointmentsResponse{Appointments: appointments})
}

// deleteAppointment godoc
// @Summary Delete a calendar entry
// @Description Removes the appointment with the given id; unknown ids are ignored
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to delete appointment"
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (h *appointmentHandler) deleteAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointmentID := c.Param("id")

	if err := h.store.DeleteAppointment(c.Request.Context(), appointmentID); err != nil {
		logger.Error("Failed to delete appointment", slog.String("error", err.Error()), slog.String("appointment_id", appointmentID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete appointment"})
		return
	}

	c.Status(http.StatusNoContent)
}
