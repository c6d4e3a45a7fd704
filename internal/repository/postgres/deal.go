package postgres

import (
	"database/sql"

	"github.com/Kamibony/DealUpCool/internal/domain"
)

// DealRepo implements repository.DealRepository
type DealRepo struct {
	db *sql.DB
}

// NewDealRepo creates a new deal repository
func NewDealRepo(db *sql.DB) *DealRepo {
	return &DealRepo{db: db}
}

// GetDeal returns the deal by id, or nil when it does not exist
func (r *DealRepo) GetDeal(dealID int64) (*domain.Deal, error) {
	var d domain.Deal
	var description, dataNeeded, imageURL, finalInstructions sql.NullString
	var originalPrice sql.NullFloat64
	var startsAt, endsAt sql.NullTime

	query := `
		SELECT deal_id, name, description, original_price, deal_price, status,
			data_needed, image_url, starts_at, ends_at, final_instructions, created_at
		FROM deals
		WHERE deal_id = $1
	`
	err := r.db.QueryRow(query, dealID).Scan(
		&d.ID, &d.Name, &description, &originalPrice, &d.DealPrice, &d.Status,
		&dataNeeded, &imageURL, &startsAt, &endsAt, &finalInstructions, &d.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d.Description = description.String
	d.DataNeeded = dataNeeded.String
	d.ImageURL = imageURL.String
	d.FinalInstructions = finalInstructions.String
	if originalPrice.Valid {
		d.OriginalPrice = &originalPrice.Float64
	}
	if startsAt.Valid {
		d.StartsAt = &startsAt.Time
	}
	if endsAt.Valid {
		d.EndsAt = &endsAt.Time
	}

	return &d, nil
}

// ListActiveDeals returns active deals, newest first
func (r *DealRepo) ListActiveDeals() ([]domain.Deal, error) {
	query := `
		SELECT deal_id, name, description, original_price, deal_price
		FROM deals
		WHERE status = 'active'
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		var d domain.Deal
		var description sql.NullString
		var originalPrice sql.NullFloat64
		if err := rows.Scan(&d.ID, &d.Name, &description, &originalPrice, &d.DealPrice); err != nil {
			return nil, err
		}
		d.Status = domain.DealActive
		d.Description = description.String
		if originalPrice.Valid {
			d.OriginalPrice = &originalPrice.Float64
		}
		deals = append(deals, d)
	}

	return deals, rows.Err()
}

// InsertDeal creates a new deal and returns its id
func (r *DealRepo) InsertDeal(deal domain.Deal) (int64, error) {
	query := `
		INSERT INTO deals (name, description, original_price, deal_price, status,
			data_needed, image_url, starts_at, ends_at, final_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING deal_id
	`
	status := deal.Status
	if status == "" {
		status = domain.DealActive
	}

	var id int64
	err := r.db.QueryRow(query,
		deal.Name,
		nullString(deal.Description),
		nullFloat(deal.OriginalPrice),
		deal.DealPrice,
		string(status),
		nullString(deal.DataNeeded),
		nullString(deal.ImageURL),
		deal.StartsAt,
		deal.EndsAt,
		nullString(deal.FinalInstructions),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
