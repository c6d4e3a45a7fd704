package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kamibony/DealUpCool/internal/domain"

	"go.uber.org/zap"
)

// skipMarker lets the admin leave an optional draft field empty
const skipMarker = "-"

// DraftReply tells the handler what to send after one admin answer
type DraftReply struct {
	Prompt string
	Done   bool
	DealID int64
}

// DealAdminService drives the conversational deal-creation flow for admins
type DealAdminService struct {
	deals  *DealService
	logger *zap.Logger
}

// NewDealAdminService creates a new admin service
func NewDealAdminService(deals *DealService, logger *zap.Logger) *DealAdminService {
	return &DealAdminService{deals: deals, logger: logger}
}

// Start opens a fresh draft and returns the first question
func (s *DealAdminService) Start() (*domain.DealDraft, string) {
	draft := &domain.DealDraft{Step: domain.DraftName}
	return draft, "Zadej *název* nové Výzvy:"
}

// Advance feeds one admin answer into the draft. The reply carries either the
// next question (including re-prompts on invalid input) or, once the draft is
// complete, the id of the inserted deal. An error means the store write failed.
func (s *DealAdminService) Advance(draft *domain.DealDraft, input string) (DraftReply, error) {
	input = strings.TrimSpace(input)

	switch draft.Step {
	case domain.DraftName:
		if input == "" || input == skipMarker {
			return DraftReply{Prompt: "Název nesmí být prázdný. Zadej *název* Výzvy:"}, nil
		}
		draft.Deal.Name = input
		draft.Step = domain.DraftDescription
		return DraftReply{Prompt: "Zadej *popis* Výzvy (nebo '-' pro přeskočení):"}, nil

	case domain.DraftDescription:
		if input != skipMarker {
			draft.Deal.Description = input
		}
		draft.Step = domain.DraftOriginalPrice
		return DraftReply{Prompt: "Zadej *původní cenu* v Kč (nebo '-' pro přeskočení):"}, nil

	case domain.DraftOriginalPrice:
		if input != skipMarker {
			price, ok := parsePrice(input)
			if !ok {
				return DraftReply{Prompt: "Toto není platná cena. Zadej *původní cenu* v Kč (nebo '-'):"}, nil
			}
			draft.Deal.OriginalPrice = &price
		}
		draft.Step = domain.DraftDealPrice
		return DraftReply{Prompt: "Zadej *akční cenu* v Kč:"}, nil

	case domain.DraftDealPrice:
		price, ok := parsePrice(input)
		if !ok {
			return DraftReply{Prompt: "Toto není platná cena. Zadej *akční cenu* v Kč:"}, nil
		}
		draft.Deal.DealPrice = price
		draft.Step = domain.DraftDataNeeded
		return DraftReply{Prompt: "Zadej *požadované údaje* oddělené čárkou (např. 'email, počet kusů'), nebo '-' pokud žádné nejsou potřeba:"}, nil

	case domain.DraftDataNeeded:
		if input != skipMarker {
			draft.Deal.DataNeeded = input
		}
		draft.Step = domain.DraftInstructions
		return DraftReply{Prompt: "Zadej *finální instrukce* (placeholdery: {user_first_name}, {deal_name}, {deal_price}), nebo '-' pro výchozí text:"}, nil

	case domain.DraftInstructions:
		if input != skipMarker {
			draft.Deal.FinalInstructions = input
		}
		draft.Deal.Status = domain.DealActive

		id, err := s.deals.Create(draft.Deal)
		if err != nil {
			s.logger.Error("Failed to insert deal", zap.Error(err))
			return DraftReply{}, err
		}

		s.logger.Info("Deal created",
			zap.Int64("deal_id", id),
			zap.String("name", draft.Deal.Name),
		)
		return DraftReply{
			Prompt: fmt.Sprintf("Hotovo! Výzva *%s* vytvořena s ID %d.", draft.Deal.Name, id),
			Done:   true,
			DealID: id,
		}, nil

	default:
		return DraftReply{}, fmt.Errorf("unknown draft step %d", draft.Step)
	}
}

// parsePrice accepts "249", "249.50" and "249,50", all positive
func parsePrice(input string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}
