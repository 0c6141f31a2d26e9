package service

import (
	"fmt"
	"log"
	"time"

	"nailstudio/internal/repository"
)

type JobService struct {
	Repo   *repository.JobRepository
	sender *SenderService
}

func NewJobService(repo *repository.JobRepository, sender *SenderService) *JobService {
	return &JobService{Repo: repo, sender: sender}
}

// UpdateCompletedAppointments finds confirmed appointments whose end time has
// passed and marks them "completed".
func (s *JobService) UpdateCompletedAppointments() error {
	log.Println("Cron Job: Checking for appointments to mark as 'completed'...")

	appointmentIDs, err := s.Repo.GetConfirmedAppointmentIDsPastEnd()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed appointments past end time: %w", err)
	}

	if len(appointmentIDs) == 0 {
		log.Println("Cron Job: No confirmed appointments found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d appointments to mark as 'completed'. IDs: %v", len(appointmentIDs), appointmentIDs)

	err = s.Repo.UpdateAppointmentStatuses(appointmentIDs, "completed")
	if err != nil {
		return fmt.Errorf("cron job: failed to update appointment statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d appointments to 'completed'.", len(appointmentIDs))
	return nil
}

// DeleteOldPendingAppointments deletes all appointments with status 'pending' created before the given time.
func (s *JobService) DeleteOldPendingAppointments(before time.Time) (int64, error) {
	return s.Repo.DeletePendingAppointmentsOlderThan(before)
}

// SendUpcomingReminders notifies clients with a confirmed appointment
// tomorrow. Meant to run once a day in the morning.
func (s *JobService) SendUpcomingReminders() error {
	tomorrow := time.Now().In(salonLocation()).AddDate(0, 0, 1).Format("2006-01-02")

	appointments, err := s.Repo.ListConfirmedAppointmentsForDate(tomorrow)
	if err != nil {
		return fmt.Errorf("cron job: failed to list confirmed appointments for %s: %w", tomorrow, err)
	}
	if len(appointments) == 0 {
		log.Printf("Cron Job: No confirmed appointments on %s, no reminders to send.", tomorrow)
		return nil
	}

	log.Printf("Cron Job: Sending %d reminders for %s.", len(appointments), tomorrow)
	for _, appt := range appointments {
		s.sender.SendAppointmentReminder(appt)
	}
	return nil
}
