package service

import (
	"errors"
	"testing"

	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestParticipationService_ListActive(t *testing.T) {
	partRepo := new(testutil.MockParticipationRepository)
	expected := []domain.UserParticipation{
		{ParticipationID: 1, DealID: 5, DealName: "Káva", Status: domain.StatusConfirmed},
	}
	partRepo.On("ListUserActiveParticipations", int64(123)).Return(expected, nil)

	svc := NewParticipationService(partRepo, testutil.NewTestLogger())
	parts, err := svc.ListActive(123)

	assert.NoError(t, err)
	assert.Equal(t, expected, parts)
}

func TestParticipationService_Cancel(t *testing.T) {
	partRepo := new(testutil.MockParticipationRepository)
	partRepo.On("UpsertParticipation", int64(123), int64(5), domain.StatusCancelled, map[string]any(nil)).Return(nil)

	svc := NewParticipationService(partRepo, testutil.NewTestLogger())

	assert.NoError(t, svc.Cancel(123, 5))
	partRepo.AssertExpectations(t)
}

func TestParticipationService_Cancel_StoreError(t *testing.T) {
	partRepo := new(testutil.MockParticipationRepository)
	partRepo.On("UpsertParticipation", int64(123), int64(5), domain.StatusCancelled, map[string]any(nil)).
		Return(errors.New("db down"))

	svc := NewParticipationService(partRepo, testutil.NewTestLogger())

	assert.Error(t, svc.Cancel(123, 5))
}
