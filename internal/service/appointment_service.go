package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"nailstudio/internal/db"
	"nailstudio/internal/entities"
	"nailstudio/internal/repository"
	"nailstudio/internal/utils"
)

var (
	// ErrInvalidRequest marks client mistakes: missing fields, malformed
	// date/time, booking in the past.
	ErrInvalidRequest = errors.New("invalid appointment request")
	// ErrSlotTaken is returned when the requested slot is no longer free at
	// write time. Availability checks are advisory, so this is re-validated
	// inside the create path.
	ErrSlotTaken = errors.New("time slot is not available")
)

type AppointmentService struct {
	Repo         *repository.AppointmentRepository
	availability *AvailabilityService
	sender       *SenderService
}

func NewAppointmentService(repo *repository.AppointmentRepository, availability *AvailabilityService, sender *SenderService) *AppointmentService {
	return &AppointmentService{Repo: repo,
		availability: availability,
		sender:       sender}
}

func (s *AppointmentService) CreateAppointment(req *entities.AppointmentRequest) (*entities.AppointmentResponse, error) {
	if req.ClientName == "" || req.ClientPhone == "" || req.ServiceID == 0 || req.AppointmentDate == "" || req.AppointmentTime == "" {
		return nil, fmt.Errorf("%w: client_name, client_phone, service_id, appointment_date and appointment_time are required", ErrInvalidRequest)
	}

	startsAt, err := parseAppointmentStart(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if startsAt.Before(time.Now().In(salonLocation())) {
		return nil, fmt.Errorf("%w: cannot book an appointment in the past", ErrInvalidRequest)
	}

	if err := s.ensureSlotFree(req.AppointmentDate, req.AppointmentTime, req.ServiceID); err != nil {
		return nil, err
	}

	appt := &db.Appointment{
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     sql.NullString{String: req.ClientEmail, Valid: req.ClientEmail != ""},
		ServiceID:       sql.NullInt64{Int64: int64(req.ServiceID), Valid: true},
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          utils.StatusPending,
		Notes:           sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	}
	if err := s.Repo.CreateAppointment(appt); err != nil {
		log.Printf("Error creating appointment in repository: %v", err)
		return nil, err
	}

	created, err := s.Repo.GetAppointmentByID(appt.ID)
	if err != nil {
		return nil, err
	}

	if s.sender != nil {
		s.sender.SendAppointmentEmail(*created, utils.StatusPending)
		s.sender.SendAppointmentSMS(*created, utils.StatusPending)
	}
	return created, nil
}

// ensureSlotFree re-validates the requested slot against current bookings.
// The availability endpoint is advisory; a booking created between the check
// and the write must still be rejected here.
func (s *AppointmentService) ensureSlotFree(date, clock string, serviceID int) error {
	availability, err := s.availability.CheckAvailability(date, serviceID)
	if err != nil {
		return err
	}
	for _, slot := range availability.TimeSlots {
		if slot.Time != clock {
			continue
		}
		if !slot.Available {
			return fmt.Errorf("%s %s: %w", date, clock, ErrSlotTaken)
		}
		return nil
	}
	return fmt.Errorf("%w: %s is outside business hours", ErrInvalidRequest, clock)
}

func (s *AppointmentService) GetAppointmentByID(id int) (*entities.AppointmentResponse, error) {
	return s.Repo.GetAppointmentByID(id)
}

func (s *AppointmentService) ListAppointments(date, status string) ([]entities.AppointmentResponse, error) {
	return s.Repo.ListAppointments(date, status)
}

func (s *AppointmentService) UpdateAppointment(id int, req *entities.AppointmentUpdateRequest) error {
	if req.Status != nil {
		normalized := utils.NormalizeStatus(*req.Status)
		if !utils.IsValidAppointmentStatus(normalized) {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, *req.Status)
		}
		req.Status = &normalized
	}

	if err := s.Repo.UpdateAppointment(id, req); err != nil {
		return err
	}

	// Status changes are what the client cares about; confirm and cancel
	// both trigger a notification.
	if req.Status != nil && (*req.Status == utils.StatusConfirmed || *req.Status == utils.StatusCancelled) {
		appt, err := s.Repo.GetAppointmentByID(id)
		if err != nil {
			log.Printf("Could not load appointment %d for notification: %v", id, err)
			return nil
		}
		if s.sender != nil {
			s.sender.SendAppointmentEmail(*appt, *req.Status)
			s.sender.SendAppointmentSMS(*appt, *req.Status)
		}
	}
	return nil
}

func (s *AppointmentService) DeleteAppointment(id int) error {
	return s.Repo.DeleteAppointment(id)
}

func parseAppointmentStart(date, clock string) (time.Time, error) {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, salonLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed appointment date or time: %v", err)
	}
	return startsAt, nil
}

func salonLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}
