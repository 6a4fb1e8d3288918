package domain

// Appointment is a calendar entry at day granularity. Multiple appointments
// may share a date; the id is the only unique key.
type Appointment struct {
	AppointmentID string `json:"id"`   // Primary key (UUID)
	Date          string `json:"date"` // YYYY-MM-DD
	Title         string `json:"title"`
	Time          string `json:"time"` // HH:MM
	Category      string `json:"category"`
}
