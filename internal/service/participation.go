package service

import (
	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/repository"

	"go.uber.org/zap"
)

// ParticipationService handles listing and cancelling participations
type ParticipationService struct {
	participations repository.ParticipationRepository
	logger         *zap.Logger
}

// NewParticipationService creates a new participation service
func NewParticipationService(participations repository.ParticipationRepository, logger *zap.Logger) *ParticipationService {
	return &ParticipationService{
		participations: participations,
		logger:         logger,
	}
}

// ListActive returns the user's non-terminal participations with deal names
func (s *ParticipationService) ListActive(userID int64) ([]domain.UserParticipation, error) {
	return s.participations.ListUserActiveParticipations(userID)
}

// Cancel moves the participation to cancelled. The store clears the collected
// answers as part of the same write, so no personal data survives the
// cancellation.
func (s *ParticipationService) Cancel(userID, dealID int64) error {
	err := s.participations.UpsertParticipation(userID, dealID, domain.StatusCancelled, nil)
	if err != nil {
		s.logger.Error("Failed to cancel participation",
			zap.Int64("user_id", userID),
			zap.Int64("deal_id", dealID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Participation cancelled",
		zap.Int64("user_id", userID),
		zap.Int64("deal_id", dealID),
	)
	return nil
}
