package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL,
		duration INT NOT NULL,
		image_url TEXT,
		category TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS gallery (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		image_url TEXT NOT NULL,
		category TEXT,
		is_published BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id SERIAL PRIMARY KEY,
		client_name TEXT NOT NULL,
		client_phone TEXT NOT NULL,
		client_email TEXT,
		service_id INT REFERENCES services(id) ON DELETE SET NULL,
		appointment_date DATE NOT NULL,
		appointment_time TIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id SERIAL PRIMARY KEY,
		client_name TEXT NOT NULL,
		review_text TEXT NOT NULL,
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		avatar_url TEXT,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS master_info (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		bio TEXT,
		avatar_url TEXT,
		experience TEXT,
		specialization TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id SERIAL PRIMARY KEY,
		setting_name TEXT NOT NULL UNIQUE,
		setting_value TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// InitSchema creates the tables if they do not exist yet and seeds a default
// admin account when the admins table is empty.
func InitSchema(database *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("error initializing schema: %w", err)
		}
	}
	return seedDefaultAdmin(database)
}

func seedDefaultAdmin(database *sql.DB) error {
	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return fmt.Errorf("error checking admins table: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	_, err = database.Exec(
		`INSERT INTO admins (username, email, password_hash) VALUES ($1, $2, $3)`,
		"admin", email, string(hash),
	)
	if err != nil {
		return fmt.Errorf("error seeding default admin: %w", err)
	}
	log.Println("Default admin created. Please change the password after first login.")
	return nil
}
