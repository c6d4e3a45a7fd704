package repository

import (
	"github.com/Kamibony/DealUpCool/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	UpsertUser(userID int64, firstName, lastName, username string) error
	UpdateConsent(userID int64, status domain.ConsentStatus) error
}

// DealRepository defines deal data operations
type DealRepository interface {
	GetDeal(dealID int64) (*domain.Deal, error)
	ListActiveDeals() ([]domain.Deal, error)
	InsertDeal(deal domain.Deal) (int64, error)
}

// ParticipationRepository defines participation data operations
type ParticipationRepository interface {
	GetParticipation(userID, dealID int64) (*domain.Participation, error)
	UpsertParticipation(userID, dealID int64, status domain.ParticipationStatus, collected map[string]any) error
	ListUserActiveParticipations(userID int64) ([]domain.UserParticipation, error)
}
