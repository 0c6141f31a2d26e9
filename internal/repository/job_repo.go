package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"nailstudio/internal/entities"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetConfirmedAppointmentIDsPastEnd returns IDs of confirmed appointments
// whose end time (start + service duration, 60 minutes when the service is
// unknown) is already in the past.
func (r *JobRepository) GetConfirmedAppointmentIDsPastEnd() ([]int, error) {
	query := `
		SELECT a.id
		FROM appointments a
		LEFT JOIN services s ON a.service_id = s.id
		WHERE a.status = 'confirmed'
		  AND (a.appointment_date + a.appointment_time) + make_interval(mins => COALESCE(s.duration, 60)) < NOW()`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed appointments past end time: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning appointment ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateAppointmentStatuses sets the status of a list of appointments and
// bumps updated_at.
func (r *JobRepository) UpdateAppointmentStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	result, err := r.DB.Exec(
		`UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = ANY($2)`,
		newStatus, pq.Array(ids),
	)
	if err != nil {
		return fmt.Errorf("error updating appointment statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d appointments to '%s'", rowsAffected, newStatus)
	}
	return nil
}

// DeletePendingAppointmentsOlderThan removes pending appointment requests
// created before the given time.
func (r *JobRepository) DeletePendingAppointmentsOlderThan(before time.Time) (int64, error) {
	result, err := r.DB.Exec(
		`DELETE FROM appointments WHERE status = 'pending' AND created_at < $1`, before,
	)
	if err != nil {
		return 0, fmt.Errorf("error deleting old pending appointments: %w", err)
	}
	return result.RowsAffected()
}

// ListConfirmedAppointmentsForDate returns the confirmed appointments of one
// day with enough contact detail to send reminders.
func (r *JobRepository) ListConfirmedAppointmentsForDate(date string) ([]entities.AppointmentResponse, error) {
	query := `
		SELECT
			a.id, a.client_name, a.client_phone, COALESCE(a.client_email, ''),
			COALESCE(s.name, ''), to_char(a.appointment_date, 'YYYY-MM-DD'), to_char(a.appointment_time, 'HH24:MI')
		FROM appointments a
		LEFT JOIN services s ON a.service_id = s.id
		WHERE a.appointment_date = $1 AND a.status = 'confirmed'
		ORDER BY a.appointment_time`
	rows, err := r.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed appointments for %s: %w", date, err)
	}
	defer rows.Close()

	var appointments []entities.AppointmentResponse
	for rows.Next() {
		var a entities.AppointmentResponse
		if err := rows.Scan(&a.ID, &a.ClientName, &a.ClientPhone, &a.ClientEmail, &a.ServiceName, &a.AppointmentDate, &a.AppointmentTime); err != nil {
			return nil, fmt.Errorf("error scanning confirmed appointment: %w", err)
		}
		a.Status = "confirmed"
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
