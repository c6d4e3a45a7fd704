package postgres

import (
	"database/sql"
	"fmt"

	"github.com/Kamibony/DealUpCool/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// UpsertUser creates the user or refreshes profile fields on repeat /start
func (r *UserRepo) UpsertUser(userID int64, firstName, lastName, username string) error {
	query := `
		INSERT INTO users (telegram_id, first_name, last_name, username)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (telegram_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			username = EXCLUDED.username,
			joined_at = NOW()
	`
	_, err := r.db.Exec(query, userID, firstName, lastName, username)
	return err
}

// UpdateConsent records the user's consent decision
func (r *UserRepo) UpdateConsent(userID int64, status domain.ConsentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid consent status %q", status)
	}
	query := `UPDATE users SET consent_status = $1 WHERE telegram_id = $2`
	_, err := r.db.Exec(query, string(status), userID)
	return err
}
