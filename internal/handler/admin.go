package handler

import (
	"github.com/Kamibony/DealUpCool/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleNewDeal handles /nova_vyzva: opens the deal-creation questionnaire.
// The allow-list middleware already rejected non-admins.
func (h *Handler) handleNewDeal(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("Admin opened deal creation", zap.Int64("user_id", userID))

	// An open collection flow stays untouched; only the draft slot is replaced.
	draft, prompt := h.admin.Start()
	h.sessions.InstallDraft(userID, draft)

	return c.Send(prompt)
}

// handleDraftAnswer feeds one answer into the admin's deal draft
func (h *Handler) handleDraftAnswer(c tele.Context, draft *domain.DealDraft, text string) error {
	userID := c.Sender().ID

	reply, err := h.admin.Advance(draft, text)
	if err != nil {
		h.metrics.HandlerErrors.WithLabelValues("new_deal").Inc()
		h.sessions.ClearDraft(userID)
		return c.Send("Nastala chyba při vytváření Výzvy. Zkus to prosím znovu přes /nova_vyzva.")
	}

	if reply.Done {
		h.sessions.ClearDraft(userID)
	}
	return c.Send(reply.Prompt)
}
