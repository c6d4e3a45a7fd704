package handler

import (
	"fmt"
	"strings"

	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const answerReminder = "Prosím, odpověz na položenou otázku nebo akci zruš příkazem /cancel."

// handleText routes plain text by conversation state: admin draft answers
// first, then questionnaire answers, then consent replies, then the
// unknown-message fallback
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if draft := h.sessions.Draft(userID); draft != nil {
		return h.handleDraftAnswer(c, draft, text)
	}

	if sess := h.sessions.Collect(userID); sess != nil {
		return h.handleFieldAnswer(c, sess, c.Text())
	}

	switch text {
	case consentYesText:
		return h.handleConsent(c, domain.ConsentGranted)
	case consentNoText:
		return h.handleConsent(c, domain.ConsentDenied)
	}

	h.logger.Info("Unknown message outside any flow",
		zap.Int64("user_id", userID),
		zap.String("text", text),
	)
	return c.Send(fmt.Sprintf("Promiň, na zprávu '%s' neumím reagovat. Zkus /help.", text))
}

// handleFieldAnswer feeds one answer into the sequencer and chains to the
// next question
func (h *Handler) handleFieldAnswer(c tele.Context, sess *domain.CollectSession, raw string) error {
	userID := c.Sender().ID

	result := h.collection.SubmitAnswer(sess, raw)
	switch result.Kind {
	case service.SubmitInvalid:
		h.metrics.ValidationFailures.WithLabelValues(sess.Awaiting).Inc()
		return c.Send(result.ErrorMessage)

	case service.SubmitAdvance:
		return h.askNext(c, userID, displayName(c.Sender()))

	default:
		// No field awaited right now; remind instead of guessing.
		return c.Send(answerReminder)
	}
}

// askNext asks the next pending field or, once all are collected, finalizes
// the participation. The session is always released on finalization, even
// when the store write fails.
func (h *Handler) askNext(c tele.Context, userID int64, firstName string) error {
	sess := h.sessions.Collect(userID)
	if sess == nil {
		return nil
	}

	ask := h.collection.AskNext(sess)
	if ask.Kind == service.AskQuestion {
		return c.Send(ask.Prompt)
	}

	message, err := h.collection.Finalize(userID, firstName, sess)
	h.sessions.ClearCollect(userID)
	if err != nil {
		h.metrics.HandlerErrors.WithLabelValues("finalize").Inc()
		return c.Send("Chyba při ukládání údajů.")
	}

	h.metrics.ConfirmedTotal.Inc()
	return c.Send(message)
}

// handleCancelAction handles /cancel: aborts whichever flow is open
func (h *Handler) handleCancelAction(c tele.Context) error {
	userID := c.Sender().ID
	remove := &tele.ReplyMarkup{RemoveKeyboard: true}

	if h.sessions.Draft(userID) != nil {
		h.sessions.ClearDraft(userID)
		h.logger.Info("Admin cancelled deal draft", zap.Int64("user_id", userID))
		return c.Send("Vytváření Výzvy bylo zrušeno.", remove)
	}

	sess := h.sessions.Collect(userID)
	if sess == nil {
		return c.Send("Žádná akce neprobíhá.", remove)
	}

	h.logger.Info("User cancelled data collection",
		zap.Int64("user_id", userID),
		zap.Int64("deal_id", sess.DealID),
	)

	if err := h.participations.Cancel(userID, sess.DealID); err != nil {
		h.metrics.HandlerErrors.WithLabelValues("cancel").Inc()
	} else {
		h.metrics.CancellationsTotal.Inc()
	}

	h.sessions.ClearCollect(userID)
	return c.Send("Akce byla zrušena.", remove)
}
