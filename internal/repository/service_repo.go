package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"nailstudio/internal/db"

	"github.com/lib/pq"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(database *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: database}
}

func (r *ServiceRepository) ListServices(category string) ([]db.Service, error) {
	query := `SELECT id, name, description, price, duration, image_url, category, created_at, updated_at FROM services`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying services: %w", err)
	}
	defer rows.Close()

	var services []db.Service
	for rows.Next() {
		var s db.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.ImageURL, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) GetServiceByID(id int) (*db.Service, error) {
	var s db.Service
	err := r.DB.QueryRow(
		`SELECT id, name, description, price, duration, image_url, category, created_at, updated_at FROM services WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.ImageURL, &s.Category, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying service: %w", err)
	}
	return &s, nil
}

// GetServiceDuration returns the duration in minutes of the given service, or
// ErrNotFound when no such service exists.
func (r *ServiceRepository) GetServiceDuration(id int) (int, error) {
	var duration int
	err := r.DB.QueryRow(`SELECT duration FROM services WHERE id = $1`, id).Scan(&duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("service %d: %w", id, ErrNotFound)
		}
		return 0, fmt.Errorf("error querying service duration: %w", err)
	}
	return duration, nil
}

func (r *ServiceRepository) CreateService(s *db.Service) error {
	query := `
		INSERT INTO services (name, description, price, duration, image_url, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query, s.Name, s.Description, s.Price, s.Duration, s.ImageURL, s.Category).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateService applies the non-nil fields of the update to the service row.
func (r *ServiceRepository) UpdateService(id int, name, description, imageURL, category *string, price *float64, duration *int) error {
	setClauses := []string{}
	args := []interface{}{}
	idx := 1

	add := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(idx))
		args = append(args, value)
		idx++
	}

	if name != nil {
		add("name", *name)
	}
	if description != nil {
		add("description", sql.NullString{String: *description, Valid: *description != ""})
	}
	if price != nil {
		add("price", *price)
	}
	if duration != nil {
		add("duration", *duration)
	}
	if imageURL != nil {
		add("image_url", sql.NullString{String: *imageURL, Valid: *imageURL != ""})
	}
	if category != nil {
		add("category", sql.NullString{String: *category, Valid: *category != ""})
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := "UPDATE services SET "
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
		return fmt.Errorf("error updating service: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("service %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountActiveAppointmentsForServices reports how many non-cancelled
// appointments reference any of the given services.
func (r *ServiceRepository) CountActiveAppointmentsForServices(ids []int) (int, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM appointments WHERE service_id = ANY($1) AND status != 'cancelled'`,
		pq.Array(ids),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting appointments for services: %w", err)
	}
	return count, nil
}

func (r *ServiceRepository) DeleteServices(ids []int) error {
	_, err := r.DB.Exec(`DELETE FROM services WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error deleting services: %w", err)
	}
	return nil
}
