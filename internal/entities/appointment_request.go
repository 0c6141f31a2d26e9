package entities

type AppointmentRequest struct {
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	ClientEmail     string `json:"client_email"`
	ServiceID       int    `json:"service_id"`
	AppointmentDate string `json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string `json:"appointment_time"` // HH:MM
	Notes           string `json:"notes"`
}

// AppointmentUpdateRequest carries a partial update; nil fields are left
// untouched.
type AppointmentUpdateRequest struct {
	ClientName      *string `json:"client_name"`
	ClientPhone     *string `json:"client_phone"`
	ClientEmail     *string `json:"client_email"`
	ServiceID       *int    `json:"service_id"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}
