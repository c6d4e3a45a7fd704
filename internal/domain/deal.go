package domain

import (
	"strconv"
	"strings"
	"time"
)

// DealStatus is the lifecycle state of a deal ("Výzva")
type DealStatus string

const (
	DealActive    DealStatus = "active"
	DealUpcoming  DealStatus = "upcoming"
	DealClosed    DealStatus = "closed"
	DealCancelled DealStatus = "cancelled"
)

// Deal represents a collective-purchase offer
type Deal struct {
	ID                int64
	Name              string
	Description       string
	OriginalPrice     *float64
	DealPrice         float64
	Status            DealStatus
	DataNeeded        string
	ImageURL          string
	StartsAt          *time.Time
	EndsAt            *time.Time
	FinalInstructions string
	CreatedAt         time.Time
}

// IsActive reports whether users may join the deal
func (d *Deal) IsActive() bool {
	return d.Status == DealActive
}

// FormatPrice renders a price in Kč without a trailing .0 ("300", "249.5").
// Every user-facing price goes through here.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// RequiredFields parses DataNeeded into the ordered list of field names the
// participant must supply. Empty entries are dropped, so both an absent value
// and a list of commas mean no data collection is needed.
func (d *Deal) RequiredFields() []string {
	if strings.TrimSpace(d.DataNeeded) == "" {
		return nil
	}
	parts := strings.Split(d.DataNeeded, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			fields = append(fields, name)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
