package testutil

import (
	"github.com/Kamibony/DealUpCool/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(userID int64, firstName, lastName, username string) error {
	args := m.Called(userID, firstName, lastName, username)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateConsent(userID int64, status domain.ConsentStatus) error {
	args := m.Called(userID, status)
	return args.Error(0)
}

// MockDealRepository is a mock for DealRepository
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) GetDeal(dealID int64) (*domain.Deal, error) {
	args := m.Called(dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealRepository) ListActiveDeals() ([]domain.Deal, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealRepository) InsertDeal(deal domain.Deal) (int64, error) {
	args := m.Called(deal)
	return args.Get(0).(int64), args.Error(1)
}

// MockParticipationRepository is a mock for ParticipationRepository
type MockParticipationRepository struct {
	mock.Mock
}

func (m *MockParticipationRepository) GetParticipation(userID, dealID int64) (*domain.Participation, error) {
	args := m.Called(userID, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participation), args.Error(1)
}

func (m *MockParticipationRepository) UpsertParticipation(userID, dealID int64, status domain.ParticipationStatus, collected map[string]any) error {
	args := m.Called(userID, dealID, status, collected)
	return args.Error(0)
}

func (m *MockParticipationRepository) ListUserActiveParticipations(userID int64) ([]domain.UserParticipation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserParticipation), args.Error(1)
}
