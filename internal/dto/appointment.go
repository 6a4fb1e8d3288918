package dto

import (
	"github.com/maooe/finance_control_app/internal/core/domain"
)

// CreateAppointmentRequest defines the data needed to create a calendar entry.
type CreateAppointmentRequest struct {
	Date     string `json:"date" binding:"required,ymd"`
	Title    string `json:"title" binding:"required"`
	Time     string `json:"time"`
	Category string `json:"category"`
}

// ToDomain converts the request into a domain.Appointment. The id is left
// empty; the store assigns it.
func (r CreateAppointmentRequest) ToDomain() domain.Appointment {
	return domain.Appointment{
		Date:     r.Date,
		Title:    r.Title,
		Time:     r.Time,
		Category: r.Category,
	}
}

// ListAppointmentsParams defines query parameters for listing appointments.
type ListAppointmentsParams struct {
	Date string `form:"date"` // Optional YYYY-MM-DD filter
}

// ListAppointmentsResponse wraps the appointment collection.
type ListAppointmentsResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
}
