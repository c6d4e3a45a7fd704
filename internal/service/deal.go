package service

import (
	"fmt"

	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/repository"
)

// DealService handles deal listing and creation
type DealService struct {
	dealRepo repository.DealRepository
}

// NewDealService creates a new deal service
func NewDealService(dealRepo repository.DealRepository) *DealService {
	return &DealService{dealRepo: dealRepo}
}

// Get returns the deal by id, or nil when it does not exist
func (s *DealService) Get(dealID int64) (*domain.Deal, error) {
	return s.dealRepo.GetDeal(dealID)
}

// ListActive returns the active deals, newest first
func (s *DealService) ListActive() ([]domain.Deal, error) {
	return s.dealRepo.ListActiveDeals()
}

// Create validates and inserts a new deal, returning its id
func (s *DealService) Create(deal domain.Deal) (int64, error) {
	if deal.Name == "" {
		return 0, fmt.Errorf("deal name cannot be empty")
	}
	if deal.DealPrice <= 0 {
		return 0, fmt.Errorf("deal price must be positive")
	}
	return s.dealRepo.InsertDeal(deal)
}
