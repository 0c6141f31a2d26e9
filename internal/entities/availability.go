package entities

// TimeSlot is one candidate start time within business hours. Slots are
// generated fresh per request and never persisted.
type TimeSlot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date            string     `json:"date"`
	ServiceDuration int        `json:"service_duration"`
	TimeSlots       []TimeSlot `json:"time_slots"`
}

// BookedAppointment is the read-only view of an existing, non-cancelled
// appointment that the availability engine checks slots against.
// DurationMinutes is 0 when the linked service no longer exists.
type BookedAppointment struct {
	Time            string // HH:MM
	DurationMinutes int
}
