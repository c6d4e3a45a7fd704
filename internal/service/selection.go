package service

import (
	"fmt"

	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/repository"

	"go.uber.org/zap"
)

// SelectionKind tags the outcome of resolving a deal selection
type SelectionKind int

const (
	// SelectionRejected - deal missing or not active, nothing written
	SelectionRejected SelectionKind = iota
	// SelectionAlreadyParticipating - an existing record blocks re-entry, nothing written
	SelectionAlreadyParticipating
	// SelectionError - a store write failed
	SelectionError
	// SelectionConfirmed - no fields needed, participation confirmed immediately
	SelectionConfirmed
	// SelectionNeedsCollection - interest recorded, caller must start the questionnaire
	SelectionNeedsCollection
)

// SelectionResult is what the handler renders after a deal selection
type SelectionResult struct {
	Kind    SelectionKind
	Message string
	// Session seeds the collection flow; set only for SelectionNeedsCollection
	Session *domain.CollectSession
}

const defaultInstructions = "Účast potvrzena! Další instrukce brzy."

// SelectionService decides what happens when a user picks a deal
type SelectionService struct {
	deals          repository.DealRepository
	participations repository.ParticipationRepository
	logger         *zap.Logger
}

// NewSelectionService creates a new selection service
func NewSelectionService(
	deals repository.DealRepository,
	participations repository.ParticipationRepository,
	logger *zap.Logger,
) *SelectionService {
	return &SelectionService{
		deals:          deals,
		participations: participations,
		logger:         logger,
	}
}

// Resolve processes a user's selection of a deal: checks eligibility, records
// interest, and either confirms immediately (no fields needed) or hands back
// a seeded collection session. At most the interest write plus the confirm
// write touch the store.
func (s *SelectionService) Resolve(userID, dealID int64, firstName string) SelectionResult {
	deal, err := s.deals.GetDeal(dealID)
	if err != nil {
		s.logger.Error("Failed to load deal",
			zap.Int64("deal_id", dealID),
			zap.Error(err),
		)
		return SelectionResult{
			Kind:    SelectionError,
			Message: "Nastala chyba při načítání Výzvy. Zkus to prosím znovu.",
		}
	}

	if deal == nil || !deal.IsActive() {
		name := fmt.Sprintf("ID %d", dealID)
		if deal != nil {
			name = deal.Name
		}
		return SelectionResult{
			Kind:    SelectionRejected,
			Message: fmt.Sprintf("Výzva '%s' již není aktivní nebo neexistuje.", name),
		}
	}

	existing, err := s.participations.GetParticipation(userID, dealID)
	if err != nil {
		s.logger.Error("Failed to load participation",
			zap.Int64("user_id", userID),
			zap.Int64("deal_id", dealID),
			zap.Error(err),
		)
		return SelectionResult{
			Kind:    SelectionError,
			Message: "Nastala chyba při záznamu tvého zájmu. Zkus to prosím znovu.",
		}
	}
	if existing != nil && existing.BlocksSelection() {
		return SelectionResult{
			Kind: SelectionAlreadyParticipating,
			Message: fmt.Sprintf(
				"V této Výzvě ('%s') již máš zaznamenanou účast (stav: %s). Pro zrušení použij /zrusit_ucast.",
				deal.Name, existing.Status,
			),
		}
	}

	// Repeated selection while interested is an idempotent overwrite.
	if err := s.participations.UpsertParticipation(userID, dealID, domain.StatusInterested, nil); err != nil {
		s.logger.Error("Failed to record interest",
			zap.Int64("user_id", userID),
			zap.Int64("deal_id", dealID),
			zap.Error(err),
		)
		return SelectionResult{
			Kind:    SelectionError,
			Message: "Nastala chyba při záznamu tvého zájmu. Zkus to prosím znovu.",
		}
	}

	fields := deal.RequiredFields()
	if len(fields) == 0 {
		return s.confirmWithoutData(userID, firstName, deal)
	}

	s.logger.Info("Starting data collection",
		zap.Int64("user_id", userID),
		zap.Int64("deal_id", dealID),
		zap.Strings("fields", fields),
	)

	return SelectionResult{
		Kind: SelectionNeedsCollection,
		Message: fmt.Sprintf(
			"Super! Zájem o *%s* zaznamenán.\nNyní potřebuji pár údajů. Pro zrušení napiš /cancel.",
			deal.Name,
		),
		Session: domain.NewCollectSession(deal),
	}
}

func (s *SelectionService) confirmWithoutData(userID int64, firstName string, deal *domain.Deal) SelectionResult {
	if err := s.participations.UpsertParticipation(userID, deal.ID, domain.StatusConfirmed, map[string]any{}); err != nil {
		s.logger.Error("Failed to confirm participation",
			zap.Int64("user_id", userID),
			zap.Int64("deal_id", deal.ID),
			zap.Error(err),
		)
		return SelectionResult{
			Kind:    SelectionError,
			Message: "Chyba při potvrzování účasti.",
		}
	}

	instructions := renderInstructions(s.logger, deal, userID, firstName, nil)

	return SelectionResult{
		Kind: SelectionConfirmed,
		Message: fmt.Sprintf(
			"Skvělé, %s! Účast ve Výzvě *%s* potvrzena!\n\n%s",
			firstName, deal.Name, instructions,
		),
	}
}

// renderInstructions formats the deal's final instructions against the
// participation context, merged with any collected answers. A template
// referencing an unknown placeholder is sent unformatted.
func renderInstructions(logger *zap.Logger, deal *domain.Deal, userID int64, firstName string, answers map[string]any) string {
	tmpl := deal.FinalInstructions
	if tmpl == "" {
		tmpl = defaultInstructions
	}

	data := map[string]any{
		"user_first_name": firstName,
		"user_id":         userID,
		"deal_name":       deal.Name,
		"deal_price":      domain.FormatPrice(deal.DealPrice),
		"deal_id":         deal.ID,
	}
	for k, v := range answers {
		data[k] = v
	}

	rendered, complete := RenderTemplate(tmpl, data)
	if !complete {
		logger.Warn("Final instructions reference an unknown placeholder, sending unformatted",
			zap.Int64("deal_id", deal.ID),
		)
	}
	return rendered
}
