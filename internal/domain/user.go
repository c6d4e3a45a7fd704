package domain

import "time"

// ConsentStatus is the user's answer to the data-processing consent request
type ConsentStatus string

const (
	ConsentPending ConsentStatus = "pending"
	ConsentGranted ConsentStatus = "granted"
	ConsentDenied  ConsentStatus = "denied"
)

// IsValid reports whether the status is one of the known consent values
func (s ConsentStatus) IsValid() bool {
	switch s {
	case ConsentPending, ConsentGranted, ConsentDenied:
		return true
	}
	return false
}

// User represents a bot user
type User struct {
	TelegramID int64
	FirstName  string
	LastName   string
	Username   string
	Consent    ConsentStatus
	JoinedAt   time.Time
}
