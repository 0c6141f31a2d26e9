package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"nailstudio/internal/db"
)

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(database *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: database}
}

func (r *SettingsRepository) ListSettings() ([]db.SiteSetting, error) {
	rows, err := r.DB.Query(`SELECT setting_name, COALESCE(setting_value, ''), updated_at FROM site_settings ORDER BY setting_name`)
	if err != nil {
		return nil, fmt.Errorf("error querying site settings: %w", err)
	}
	defer rows.Close()

	var settings []db.SiteSetting
	for rows.Next() {
		var s db.SiteSetting
		if err := rows.Scan(&s.Name, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning site setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *SettingsRepository) UpsertSetting(name, value string) error {
	_, err := r.DB.Exec(`
		INSERT INTO site_settings (setting_name, setting_value)
		VALUES ($1, $2)
		ON CONFLICT (setting_name) DO UPDATE SET setting_value = $2, updated_at = NOW()`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("error upserting site setting %q: %w", name, err)
	}
	return nil
}

func (r *SettingsRepository) GetMasterInfo() (*db.MasterInfo, error) {
	var m db.MasterInfo
	err := r.DB.QueryRow(
		`SELECT id, name, bio, avatar_url, experience, specialization, updated_at FROM master_info ORDER BY id LIMIT 1`,
	).Scan(&m.ID, &m.Name, &m.Bio, &m.AvatarURL, &m.Experience, &m.Specialization, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("master info: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error querying master info: %w", err)
	}
	return &m, nil
}

// UpsertMasterInfo keeps a single master profile row: the first write inserts
// it, later writes replace it.
func (r *SettingsRepository) UpsertMasterInfo(m *db.MasterInfo) error {
	existing, err := r.GetMasterInfo()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		return r.DB.QueryRow(`
			INSERT INTO master_info (name, bio, avatar_url, experience, specialization)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, updated_at`,
			m.Name, m.Bio, m.AvatarURL, m.Experience, m.Specialization,
		).Scan(&m.ID, &m.UpdatedAt)
	}

	_, err = r.DB.Exec(`
		UPDATE master_info
		SET name = $1, bio = $2, avatar_url = $3, experience = $4, specialization = $5, updated_at = NOW()
		WHERE id = $6`,
		m.Name, m.Bio, m.AvatarURL, m.Experience, m.Specialization, existing.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating master info: %w", err)
	}
	m.ID = existing.ID
	return nil
}
