package services

import (
	"errors"
	"time"

	"supply_manager/internal/models"
	"supply_manager/internal/redis"
	"supply_manager/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(email, password, role string) (*models.User, string, error)
	Logout(token string) error
	Resolve(token string) (*redis.SessionData, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   *redis.Client
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions *redis.Client, sessionTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions, sessionTTL: sessionTTL}
}

// Login checks the credentials for the requested role and mints a session
// token. The failure is deliberately generic.
func (s *authService) Login(email, password, role string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmailAndRole(email, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := "sess_" + uuid.NewString()
	session := &redis.SessionData{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) Resolve(token string) (*redis.SessionData, error) {
	return s.sessions.GetSession(token)
}
