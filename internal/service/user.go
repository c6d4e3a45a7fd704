package service

import (
	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/repository"
)

// UserService handles user registration and consent
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates or refreshes the user record on first contact and on
// every /start
func (s *UserService) Register(userID int64, firstName, lastName, username string) error {
	return s.userRepo.UpsertUser(userID, firstName, lastName, username)
}

// SetConsent records the user's consent decision
func (s *UserService) SetConsent(userID int64, status domain.ConsentStatus) error {
	return s.userRepo.UpdateConsent(userID, status)
}
