package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Kamibony/DealUpCool/internal/domain"

	"go.uber.org/zap"
)

// ParticipationRepo implements repository.ParticipationRepository
type ParticipationRepo struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewParticipationRepo creates a new participation repository
func NewParticipationRepo(db *sql.DB, logger *zap.Logger) *ParticipationRepo {
	return &ParticipationRepo{db: db, logger: logger}
}

// GetParticipation returns the record for (user, deal), or nil when absent.
// Malformed stored collected_data is logged and treated as empty.
func (r *ParticipationRepo) GetParticipation(userID, dealID int64) (*domain.Participation, error) {
	var p domain.Participation
	var collected sql.NullString

	query := `
		SELECT participation_id, user_id, deal_id, status, collected_data, updated_at
		FROM participations
		WHERE user_id = $1 AND deal_id = $2
	`
	err := r.db.QueryRow(query, userID, dealID).Scan(
		&p.ID, &p.UserID, &p.DealID, &p.Status, &collected, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.CollectedData = map[string]any{}
	if collected.Valid && collected.String != "" {
		if err := json.Unmarshal([]byte(collected.String), &p.CollectedData); err != nil {
			r.logger.Warn("Malformed collected_data, treating as empty",
				zap.Int64("user_id", userID),
				zap.Int64("deal_id", dealID),
				zap.Error(err),
			)
			p.CollectedData = map[string]any{}
		}
	}

	return &p, nil
}

// UpsertParticipation inserts or overwrites the (user, deal) record.
// collected_data is forced to NULL when the status is cancelled, and the
// timestamp is refreshed on every write.
func (r *ParticipationRepo) UpsertParticipation(userID, dealID int64, status domain.ParticipationStatus, collected map[string]any) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid participation status %q", status)
	}

	var data sql.NullString
	if collected != nil && status != domain.StatusCancelled {
		raw, err := json.Marshal(collected)
		if err != nil {
			return fmt.Errorf("encode collected_data: %w", err)
		}
		data = sql.NullString{String: string(raw), Valid: true}
	}

	query := `
		INSERT INTO participations (user_id, deal_id, status, collected_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, deal_id) DO UPDATE SET
			status = EXCLUDED.status,
			collected_data = CASE WHEN EXCLUDED.status = 'cancelled' THEN NULL ELSE EXCLUDED.collected_data END,
			updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, dealID, string(status), data)
	return err
}

// ListUserActiveParticipations returns the user's non-terminal participations
// with deal names, newest first
func (r *ParticipationRepo) ListUserActiveParticipations(userID int64) ([]domain.UserParticipation, error) {
	query := `
		SELECT p.participation_id, p.deal_id, d.name, p.status
		FROM participations p
		JOIN deals d ON p.deal_id = d.deal_id
		WHERE p.user_id = $1 AND p.status IN ('interested', 'data_collected', 'confirmed')
		ORDER BY p.updated_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []domain.UserParticipation
	for rows.Next() {
		var up domain.UserParticipation
		if err := rows.Scan(&up.ParticipationID, &up.DealID, &up.DealName, &up.Status); err != nil {
			return nil, err
		}
		parts = append(parts, up)
	}

	return parts, rows.Err()
}
