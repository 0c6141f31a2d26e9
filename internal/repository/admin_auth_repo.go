package repository

import (
	"database/sql"
	"errors"

	"nailstudio/internal/db"

	"golang.org/x/crypto/bcrypt"
)

type AdminAuthRepository interface {
	GetByUsername(username string) (*db.Admin, error)
	GetByID(id int) (*db.Admin, error)
	CreateAdmin(username, email, password string) error
}

type adminAuthRepository struct {
	db *sql.DB
}

func NewAdminAuthRepository(database *sql.DB) AdminAuthRepository {
	return &adminAuthRepository{db: database}
}

func (r *adminAuthRepository) GetByUsername(username string) (*db.Admin, error) {
	var admin db.Admin
	err := r.db.QueryRow(
		`SELECT id, username, email, password_hash FROM admins WHERE username = $1`, username,
	).Scan(&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminAuthRepository) GetByID(id int) (*db.Admin, error) {
	var admin db.Admin
	err := r.db.QueryRow(
		`SELECT id, username, email, password_hash FROM admins WHERE id = $1`, id,
	).Scan(&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminAuthRepository) CreateAdmin(username, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO admins (username, email, password_hash) VALUES ($1, $2, $3)`,
		username, email, hashedPassword,
	)
	return err
}
