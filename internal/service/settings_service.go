package service

import (
	"database/sql"
	"fmt"

	"nailstudio/internal/db"
	"nailstudio/internal/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) ListSettings() ([]db.SiteSetting, error) {
	return s.Repo.ListSettings()
}

func (s *SettingsService) SaveSettings(settings map[string]string) error {
	if len(settings) == 0 {
		return fmt.Errorf("%w: no settings given", ErrInvalidRequest)
	}
	for name, value := range settings {
		if name == "" {
			return fmt.Errorf("%w: setting name cannot be empty", ErrInvalidRequest)
		}
		if err := s.Repo.UpsertSetting(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettingsService) GetMasterInfo() (*db.MasterInfo, error) {
	return s.Repo.GetMasterInfo()
}

func (s *SettingsService) SaveMasterInfo(name, bio, avatarURL, experience, specialization string) (*db.MasterInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	info := &db.MasterInfo{
		Name:           name,
		Bio:            sql.NullString{String: bio, Valid: bio != ""},
		AvatarURL:      sql.NullString{String: avatarURL, Valid: avatarURL != ""},
		Experience:     sql.NullString{String: experience, Valid: experience != ""},
		Specialization: sql.NullString{String: specialization, Valid: specialization != ""},
	}
	if err := s.Repo.UpsertMasterInfo(info); err != nil {
		return nil, err
	}
	return info, nil
}
