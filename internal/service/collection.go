package service

import (
	"fmt"
	"strings"

	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/repository"

	"go.uber.org/zap"
)

// AskKind tags the outcome of asking for the next field
type AskKind int

const (
	// AskQuestion - a field is awaited, Prompt must be sent to the user
	AskQuestion AskKind = iota
	// AskDone - every field is collected, caller proceeds to Finalize
	AskDone
)

// AskResult is the sequencer's answer to "what do we ask next"
type AskResult struct {
	Kind   AskKind
	Prompt string
}

// SubmitKind tags the outcome of validating one answer
type SubmitKind int

const (
	// SubmitIgnored - no field was awaited, input is not part of the flow
	SubmitIgnored SubmitKind = iota
	// SubmitInvalid - validation failed, re-prompt with ErrorMessage, no cursor advance
	SubmitInvalid
	// SubmitAdvance - answer stored, caller must ask the next field
	SubmitAdvance
)

// SubmitResult is the sequencer's answer to one user input
type SubmitResult struct {
	Kind         SubmitKind
	ErrorMessage string
}

// CollectionService drives the ordered acquisition of a deal's required
// fields, one question at a time
type CollectionService struct {
	deals          repository.DealRepository
	participations repository.ParticipationRepository
	logger         *zap.Logger
}

// NewCollectionService creates a new collection service
func NewCollectionService(
	deals repository.DealRepository,
	participations repository.ParticipationRepository,
	logger *zap.Logger,
) *CollectionService {
	return &CollectionService{
		deals:          deals,
		participations: participations,
		logger:         logger,
	}
}

// AskNext marks the next pending field as awaited and returns its question,
// or AskDone once the field list is exhausted
func (s *CollectionService) AskNext(sess *domain.CollectSession) AskResult {
	if sess.Exhausted() {
		return AskResult{Kind: AskDone}
	}

	field := sess.Fields[sess.Cursor]
	sess.Awaiting = field
	return AskResult{
		Kind:   AskQuestion,
		Prompt: domain.FieldQuestion(field),
	}
}

// SubmitAnswer validates raw input for the awaited field. On success the
// normalized value is stored and the cursor advances; on failure the session
// is untouched so the same question is asked again.
func (s *CollectionService) SubmitAnswer(sess *domain.CollectSession, raw string) SubmitResult {
	if sess.Awaiting == "" {
		return SubmitResult{Kind: SubmitIgnored}
	}

	kind := domain.ClassifyField(sess.Awaiting)
	value, err := kind.Validate(raw)
	if err != nil {
		return SubmitResult{
			Kind:         SubmitInvalid,
			ErrorMessage: err.Error(),
		}
	}

	sess.Answers[sess.Awaiting] = value
	sess.Cursor++
	sess.Awaiting = ""
	return SubmitResult{Kind: SubmitAdvance}
}

// Finalize persists the fully collected answers and builds the confirmation
// message: a summary of the collected fields followed by the deal's templated
// final instructions. The caller must release the session whether or not this
// succeeds; a failed write must never leave a stuck conversation.
func (s *CollectionService) Finalize(userID int64, firstName string, sess *domain.CollectSession) (string, error) {
	s.logger.Info("All data collected",
		zap.Int64("user_id", userID),
		zap.Int64("deal_id", sess.DealID),
	)

	if err := s.participations.UpsertParticipation(userID, sess.DealID, domain.StatusDataCollected, sess.Answers); err != nil {
		s.logger.Error("Failed to store collected data",
			zap.Int64("user_id", userID),
			zap.Int64("deal_id", sess.DealID),
			zap.Error(err),
		)
		return "", fmt.Errorf("store collected data: %w", err)
	}
	if err := s.participations.UpsertParticipation(userID, sess.DealID, domain.StatusConfirmed, sess.Answers); err != nil {
		// The data_collected write stands; the record is in a legitimate
		// intermediate state and the user is told to retry.
		s.logger.Error("Failed to confirm participation",
			zap.Int64("user_id", userID),
			zap.Int64("deal_id", sess.DealID),
			zap.Error(err),
		)
		return "", fmt.Errorf("confirm participation: %w", err)
	}

	deal, err := s.deals.GetDeal(sess.DealID)
	if err != nil || deal == nil {
		if err != nil {
			s.logger.Warn("Failed to reload deal for confirmation text",
				zap.Int64("deal_id", sess.DealID),
				zap.Error(err),
			)
		}
		deal = &domain.Deal{ID: sess.DealID, Name: sess.DealName}
	}

	instructions := renderInstructions(s.logger, deal, userID, firstName, sess.Answers)

	var b strings.Builder
	b.WriteString("Děkuji! Všechny potřebné údaje byly zaznamenány.\n\n*Shrnutí:*\n")
	for _, field := range sess.Fields {
		value, ok := sess.Answers[field]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", domain.HumanizeFieldName(field), formatValue(value)))
	}
	b.WriteString("\n*Další kroky:*\n")
	b.WriteString(instructions)

	return b.String(), nil
}
