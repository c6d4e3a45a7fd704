package domain

import "time"

// ParticipationStatus is the lifecycle state of a user's participation in a deal
type ParticipationStatus string

const (
	StatusInterested    ParticipationStatus = "interested"
	StatusDataCollected ParticipationStatus = "data_collected"
	StatusConfirmed     ParticipationStatus = "confirmed"
	StatusCancelled     ParticipationStatus = "cancelled"
)

// IsValid reports whether the status is one of the known participation values
func (s ParticipationStatus) IsValid() bool {
	switch s {
	case StatusInterested, StatusDataCollected, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Participation is a user's record for one deal. At most one exists per
// (user, deal) pair.
type Participation struct {
	ID            int64
	UserID        int64
	DealID        int64
	Status        ParticipationStatus
	CollectedData map[string]any
	UpdatedAt     time.Time
}

// BlocksSelection reports whether this record prevents the user from
// selecting the deal again. Re-entry is permitted only from interested
// or cancelled.
func (p *Participation) BlocksSelection() bool {
	return p.Status != StatusInterested && p.Status != StatusCancelled
}

// UserParticipation is a participation joined with its deal name, as shown
// in the cancellation picker.
type UserParticipation struct {
	ParticipationID int64
	DealID          int64
	DealName        string
	Status          ParticipationStatus
}
