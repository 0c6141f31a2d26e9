package service

import (
	"errors"
	"os"
	"time"

	"nailstudio/internal/db"
	"nailstudio/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AdminAuthService interface {
	Login(username, password string) (string, error)
	CreateAdmin(username, email, password string) error
	GetAdminByID(id int) (*db.Admin, error)
}

type adminAuthService struct {
	repo repository.AdminAuthRepository
}

func NewAdminAuthService(repo repository.AdminAuthRepository) AdminAuthService {
	return &adminAuthService{repo: repo}
}

func (s *adminAuthService) Login(username, password string) (string, error) {
	admin, err := s.repo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", errors.New("invalid credentials")
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(time.Hour * 1).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *adminAuthService) CreateAdmin(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return errors.New("username, email and password cannot be empty")
	}
	return s.repo.CreateAdmin(username, email, password)
}

func (s *adminAuthService) GetAdminByID(id int) (*db.Admin, error) {
	return s.repo.GetByID(id)
}
