package db

import (
	"database/sql"
	"time"
)

type Admin struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Service struct {
	ID          int
	Name        string
	Description sql.NullString
	Price       float64
	Duration    int
	ImageURL    sql.NullString
	Category    sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GalleryItem struct {
	ID          int
	Title       string
	Description sql.NullString
	ImageURL    string
	Category    sql.NullString
	IsPublished bool
	CreatedAt   time.Time
}

type Appointment struct {
	ID              int
	ClientName      string
	ClientPhone     string
	ClientEmail     sql.NullString
	ServiceID       sql.NullInt64
	AppointmentDate string // YYYY-MM-DD
	AppointmentTime string // HH:MM
	Status          string
	Notes           sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Review struct {
	ID         int
	ClientName string
	ReviewText string
	Rating     int
	AvatarURL  sql.NullString
	IsApproved bool
	CreatedAt  time.Time
}

type MasterInfo struct {
	ID             int
	Name           string
	Bio            sql.NullString
	AvatarURL      sql.NullString
	Experience     sql.NullString
	Specialization sql.NullString
	UpdatedAt      time.Time
}

type SiteSetting struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}
