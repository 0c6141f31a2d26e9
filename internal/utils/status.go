package utils

import "strings"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// IsValidAppointmentStatus reports whether s is one of the known appointment
// statuses. Matching is case-insensitive; the canonical form is lowercase.
func IsValidAppointmentStatus(s string) bool {
	switch strings.ToLower(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// NormalizeStatus lowercases a status value so handlers can accept whatever
// casing the admin UI sends.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
