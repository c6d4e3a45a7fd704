package testutil

import (
	"time"

	"github.com/Kamibony/DealUpCool/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDeal creates an active test deal
func NewTestDeal(id int64, name string, price float64, dataNeeded string) *domain.Deal {
	return &domain.Deal{
		ID:         id,
		Name:       name,
		DealPrice:  price,
		Status:     domain.DealActive,
		DataNeeded: dataNeeded,
		CreatedAt:  time.Now(),
	}
}

// NewTestParticipation creates a test participation record
func NewTestParticipation(userID, dealID int64, status domain.ParticipationStatus) *domain.Participation {
	return &domain.Participation{
		UserID:        userID,
		DealID:        dealID,
		Status:        status,
		CollectedData: map[string]any{},
		UpdatedAt:     time.Now(),
	}
}

// FloatPtr returns a pointer to the given float
func FloatPtr(f float64) *float64 {
	return &f
}
