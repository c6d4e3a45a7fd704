package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipation_BlocksSelection(t *testing.T) {
	tests := []struct {
		status  ParticipationStatus
		blocked bool
	}{
		{StatusInterested, false},
		{StatusCancelled, false},
		{StatusDataCollected, true},
		{StatusConfirmed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := &Participation{Status: tt.status}
			assert.Equal(t, tt.blocked, p.BlocksSelection())
		})
	}
}

func TestParticipationStatus_IsValid(t *testing.T) {
	assert.True(t, StatusInterested.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, ParticipationStatus("waiting").IsValid())
	assert.False(t, ParticipationStatus("").IsValid())
}

func TestConsentStatus_IsValid(t *testing.T) {
	assert.True(t, ConsentGranted.IsValid())
	assert.True(t, ConsentDenied.IsValid())
	assert.True(t, ConsentPending.IsValid())
	assert.False(t, ConsentStatus("maybe").IsValid())
}
