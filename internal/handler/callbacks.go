package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Kamibony/DealUpCool/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
// (telebot prefixes dynamic button data with \f)
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries by data prefix
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch {
	case data == cancelAbortCallback:
		return h.editOrSend(c, "Akce zrušena.")
	case strings.HasPrefix(data, cancelCallbackPrefix):
		return h.handleCancelSelection(c, data)
	case strings.HasPrefix(data, dealCallbackPrefix):
		return h.handleDealSelection(c, data)
	}

	h.logger.Warn("Unhandled callback", zap.String("data", data))
	return c.Respond()
}

// parseCallbackID extracts the numeric id from prefixed callback data
func parseCallbackID(data, prefix string) (int64, error) {
	return strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
}

// handleDealSelection runs the selection resolver for a pressed deal button
// and, when data collection is needed, opens the questionnaire
func (h *Handler) handleDealSelection(c tele.Context, data string) error {
	user := c.Sender()

	dealID, err := parseCallbackID(data, dealCallbackPrefix)
	if err != nil {
		h.logger.Error("Invalid deal callback data",
			zap.String("data", data),
			zap.Int64("user_id", user.ID),
		)
		return h.editOrSend(c, "Chyba při zpracování volby.")
	}

	result := h.selection.Resolve(user.ID, dealID, displayName(user))
	h.metrics.Selections.WithLabelValues(selectionOutcome(result.Kind)).Inc()

	switch result.Kind {
	case service.SelectionNeedsCollection:
		if err := h.editOrSend(c, result.Message); err != nil {
			return err
		}
		h.sessions.InstallCollect(user.ID, result.Session)
		return h.askNext(c, user.ID, displayName(user))

	case service.SelectionConfirmed:
		h.metrics.ConfirmedTotal.Inc()
		return h.editOrSend(c, result.Message)

	default:
		// rejected, already participating, store error - terminal, report only
		return h.editOrSend(c, result.Message)
	}
}

// selectionOutcome maps a result kind to its metric label
func selectionOutcome(kind service.SelectionKind) string {
	switch kind {
	case service.SelectionRejected:
		return "rejected"
	case service.SelectionAlreadyParticipating:
		return "already_participating"
	case service.SelectionConfirmed:
		return "confirmed"
	case service.SelectionNeedsCollection:
		return "needs_collection"
	default:
		return "error"
	}
}

// handleCancelParticipationStart handles /zrusit_ucast: lists the user's
// active participations with cancel buttons
func (h *Handler) handleCancelParticipationStart(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("User opened participation cancellation", zap.Int64("user_id", userID))

	parts, err := h.participations.ListActive(userID)
	if err != nil {
		h.logger.Error("Failed to list participations", zap.Error(err))
		return c.Send("Nastala chyba při načítání tvých účastí.")
	}
	if len(parts) == 0 {
		return c.Send("Nemáš žádné aktivní účasti.")
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(parts)+1)
	for _, p := range parts {
		btnText := fmt.Sprintf("Zrušit: %s (Stav: %s)", p.DealName, p.Status)
		btn := markup.Data(btnText, cancelCallbackPrefix+strconv.FormatInt(p.DealID, 10))
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(markup.Data("Zpět", cancelAbortCallback)))
	markup.Inline(rows...)

	return c.Send("Tvé aktivní účasti. Vyber, kterou chceš zrušit:", markup)
}

// handleCancelSelection cancels the participation picked from the list
func (h *Handler) handleCancelSelection(c tele.Context, data string) error {
	userID := c.Sender().ID

	dealID, err := parseCallbackID(data, cancelCallbackPrefix)
	if err != nil {
		h.logger.Error("Invalid cancel callback data",
			zap.String("data", data),
			zap.Int64("user_id", userID),
		)
		return h.editOrSend(c, "Chyba při zpracování volby.")
	}

	if err := h.participations.Cancel(userID, dealID); err != nil {
		return h.editOrSend(c, "Chyba při rušení účasti.")
	}
	h.metrics.CancellationsTotal.Inc()

	// A questionnaire still open for this deal would otherwise resume and
	// confirm over the cancelled record.
	h.sessions.ReleaseCollectFor(userID, dealID)

	name := fmt.Sprintf("ID %d", dealID)
	if deal, err := h.deals.Get(dealID); err == nil && deal != nil {
		name = deal.Name
	}
	return h.editOrSend(c, fmt.Sprintf("Účast ve Výzvě '%s' zrušena.", name))
}
