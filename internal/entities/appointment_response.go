package entities

import "time"

type AppointmentResponse struct {
	ID              int       `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	ClientEmail     string    `json:"client_email,omitempty"`
	ServiceID       int       `json:"service_id,omitempty"`
	ServiceName     string    `json:"service_name,omitempty"`
	ServicePrice    float64   `json:"service_price,omitempty"`
	ServiceDuration int       `json:"service_duration,omitempty"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
