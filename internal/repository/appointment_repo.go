package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"nailstudio/internal/db"
	"nailstudio/internal/entities"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(database *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: database}
}

// ListActiveAppointments returns the start time and service duration of every
// non-cancelled appointment on the given date. DurationMinutes is 0 when the
// linked service no longer exists.
func (r *AppointmentRepository) ListActiveAppointments(date string) ([]entities.BookedAppointment, error) {
	query := `
		SELECT to_char(a.appointment_time, 'HH24:MI'), COALESCE(s.duration, 0)
		FROM appointments a
		LEFT JOIN services s ON a.service_id = s.id
		WHERE a.appointment_date = $1 AND a.status != 'cancelled'
		ORDER BY a.appointment_time`

	rows, err := r.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying active appointments: %w", err)
	}
	defer rows.Close()

	var booked []entities.BookedAppointment
	for rows.Next() {
		var b entities.BookedAppointment
		if err := rows.Scan(&b.Time, &b.DurationMinutes); err != nil {
			return nil, fmt.Errorf("error scanning active appointment: %w", err)
		}
		booked = append(booked, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating active appointments: %w", err)
	}
	return booked, nil
}

func (r *AppointmentRepository) CreateAppointment(appt *db.Appointment) error {
	query := `
		INSERT INTO appointments
		(client_name, client_phone, client_email, service_id, appointment_date, appointment_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		appt.ClientName,
		appt.ClientPhone,
		appt.ClientEmail,
		appt.ServiceID,
		appt.AppointmentDate,
		appt.AppointmentTime,
		appt.Status,
		appt.Notes,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

const appointmentSelect = `
	SELECT
		a.id, a.client_name, a.client_phone, COALESCE(a.client_email, ''),
		COALESCE(a.service_id, 0), COALESCE(s.name, ''), COALESCE(s.price, 0), COALESCE(s.duration, 0),
		to_char(a.appointment_date, 'YYYY-MM-DD'), to_char(a.appointment_time, 'HH24:MI'),
		a.status, COALESCE(a.notes, ''), a.created_at, a.updated_at
	FROM appointments a
	LEFT JOIN services s ON a.service_id = s.id`

func scanAppointment(row interface{ Scan(...interface{}) error }) (*entities.AppointmentResponse, error) {
	var a entities.AppointmentResponse
	err := row.Scan(
		&a.ID, &a.ClientName, &a.ClientPhone, &a.ClientEmail,
		&a.ServiceID, &a.ServiceName, &a.ServicePrice, &a.ServiceDuration,
		&a.AppointmentDate, &a.AppointmentTime,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) GetAppointmentByID(id int) (*entities.AppointmentResponse, error) {
	appt, err := scanAppointment(r.DB.QueryRow(appointmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying appointment: %w", err)
	}
	return appt, nil
}

// ListAppointments returns appointments filtered by date and/or status, both
// optional, ordered by date and time ascending.
func (r *AppointmentRepository) ListAppointments(date, status string) ([]entities.AppointmentResponse, error) {
	query := appointmentSelect + ` WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND a.appointment_date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if status != "" {
		query += " AND a.status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	query += " ORDER BY a.appointment_date ASC, a.appointment_time ASC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}
	defer rows.Close()

	var appointments []entities.AppointmentResponse
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning appointment: %w", err)
		}
		appointments = append(appointments, *appt)
	}
	return appointments, rows.Err()
}

// UpdateAppointment applies a partial update, building the SET clause from the
// fields that were actually provided.
func (r *AppointmentRepository) UpdateAppointment(id int, req *entities.AppointmentUpdateRequest) error {
	setClauses := []string{}
	args := []interface{}{}
	idx := 1

	add := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(idx))
		args = append(args, value)
		idx++
	}

	if req.ClientName != nil {
		add("client_name", *req.ClientName)
	}
	if req.ClientPhone != nil {
		add("client_phone", *req.ClientPhone)
	}
	if req.ClientEmail != nil {
		add("client_email", sql.NullString{String: *req.ClientEmail, Valid: *req.ClientEmail != ""})
	}
	if req.ServiceID != nil {
		add("service_id", sql.NullInt64{Int64: int64(*req.ServiceID), Valid: *req.ServiceID != 0})
	}
	if req.AppointmentDate != nil {
		add("appointment_date", *req.AppointmentDate)
	}
	if req.AppointmentTime != nil {
		add("appointment_time", *req.AppointmentTime)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.Notes != nil {
		add("notes", sql.NullString{String: *req.Notes, Valid: *req.Notes != ""})
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := "UPDATE appointments SET "
	for i, clause := range setClauses {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += ", updated_at = NOW() WHERE id = $" + strconv.Itoa(idx)
	args = append(args, id)

	result, err := r.DB.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("error updating appointment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *AppointmentRepository) DeleteAppointment(id int) error {
	result, err := r.DB.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting appointment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}
	return nil
}
