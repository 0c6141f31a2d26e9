package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"nailstudio/internal/entities"
	"nailstudio/internal/repository"
)

// BusinessHours describes the bookable window of a working day and the
// cadence of the slot grid. Fixed for the lifetime of the process.
type BusinessHours struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

var DefaultBusinessHours = BusinessHours{StartHour: 10, EndHour: 20, SlotMinutes: 30}

// Appointments whose linked service no longer exists are assumed to take an
// hour when marking busy intervals.
const defaultAppointmentMinutes = 60

// ErrDataUnavailable wraps datastore read failures so callers can tell them
// apart from bad input. Availability is never silently reported as "all free"
// when a store read fails.
var ErrDataUnavailable = errors.New("availability data unavailable")

// BusyInterval is the [Start, End) range in minutes since midnight occupied
// by an existing appointment.
type BusyInterval struct {
	Start int
	End   int
}

type ServiceDurationStore interface {
	GetServiceDuration(id int) (int, error)
}

type AppointmentReader interface {
	ListActiveAppointments(date string) ([]entities.BookedAppointment, error)
}

type AvailabilityService struct {
	Hours    BusinessHours
	services ServiceDurationStore
	bookings AppointmentReader
}

func NewAvailabilityService(services ServiceDurationStore, bookings AppointmentReader) *AvailabilityService {
	return &AvailabilityService{
		Hours:    DefaultBusinessHours,
		services: services,
		bookings: bookings,
	}
}

// CheckAvailability computes the slot grid for a date. serviceID selects the
// duration used for the candidate booking's footprint; 0 (or an unknown id)
// falls back to the slot granularity. The result is advisory only: nothing is
// reserved, and a concurrent booking can still take a slot reported free.
func (s *AvailabilityService) CheckAvailability(date string, serviceID int) (*entities.AvailabilityResponse, error) {
	effectiveDuration := s.Hours.SlotMinutes
	if serviceID > 0 {
		duration, err := s.services.GetServiceDuration(serviceID)
		switch {
		case err == nil:
			effectiveDuration = duration
		case errors.Is(err, repository.ErrNotFound):
			// Unknown service is not an error: behave as if none was selected.
			log.Printf("Availability: service %d not found, using default slot duration", serviceID)
		default:
			return nil, fmt.Errorf("%w: resolving service duration: %v", ErrDataUnavailable, err)
		}
	}

	booked, err := s.bookings.ListActiveAppointments(date)
	if err != nil {
		return nil, fmt.Errorf("%w: listing appointments for %s: %v", ErrDataUnavailable, date, err)
	}

	busy := make([]BusyInterval, 0, len(booked))
	for _, b := range booked {
		start, err := parseClock(b.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment has malformed time %q: %v", ErrDataUnavailable, b.Time, err)
		}
		duration := b.DurationMinutes
		if duration <= 0 {
			duration = defaultAppointmentMinutes
		}
		busy = append(busy, BusyInterval{Start: start, End: start + duration})
	}

	return &entities.AvailabilityResponse{
		Date:            date,
		ServiceDuration: effectiveDuration,
		TimeSlots:       BuildSlots(s.Hours, effectiveDuration, busy),
	}, nil
}

// BuildSlots generates the candidate slot grid and marks each slot available
// or not against the busy intervals. Pure: the result depends only on the
// arguments, so concurrent callers share nothing.
func BuildSlots(hours BusinessHours, effectiveDuration int, busy []BusyInterval) []entities.TimeSlot {
	closing := hours.EndHour * 60

	var slots []entities.TimeSlot
	for hour := hours.StartHour; hour < hours.EndHour; hour++ {
		for minute := 0; minute < 60; minute += hours.SlotMinutes {
			start := hour*60 + minute
			end := start + effectiveDuration

			// A service that would run past closing time cannot start here,
			// whatever the booking situation.
			available := end <= closing
			if available {
				for _, b := range busy {
					if overlaps(start, end, b) {
						available = false
						break
					}
				}
			}

			slots = append(slots, entities.TimeSlot{
				Time:      formatClock(start),
				Available: available,
			})
		}
	}
	return slots
}

// overlaps reports whether the candidate slot [slotStart, slotEnd) collides
// with the busy interval. Slots that merely touch a busy interval at one
// boundary instant do not collide, so back-to-back bookings stay possible.
func overlaps(slotStart, slotEnd int, b BusyInterval) bool {
	switch {
	case slotStart >= b.Start && slotStart < b.End:
		// slot starts inside the busy interval
		return true
	case slotEnd > b.Start && slotEnd <= b.End:
		// slot ends inside the busy interval
		return true
	case slotStart <= b.Start && slotEnd >= b.End:
		// slot fully contains the busy interval
		return true
	}
	return false
}

func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
