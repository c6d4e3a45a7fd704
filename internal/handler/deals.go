package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kamibony/DealUpCool/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleListDeals shows the active deals with "Mám zájem" inline buttons
func (h *Handler) handleListDeals(c tele.Context) error {
	userID := c.Sender().ID
	h.logger.Info("Listing active deals", zap.Int64("user_id", userID))

	deals, err := h.deals.ListActive()
	if err != nil {
		h.logger.Error("Failed to list deals", zap.Error(err))
		return c.Send("Nastala chyba při načítání Výzev. Zkus to prosím později.")
	}

	text := formatDealList(deals)
	if len(deals) == 0 {
		return c.Send(text)
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(deals))
	for _, d := range deals {
		btnText := fmt.Sprintf("Mám zájem: %s (%s Kč)", d.Name, domain.FormatPrice(d.DealPrice))
		btn := markup.Data(btnText, dealCallbackPrefix+strconv.FormatInt(d.ID, 10))
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)

	return c.Send(text, markup)
}

// formatDealList builds the deal list message
func formatDealList(deals []domain.Deal) string {
	if len(deals) == 0 {
		return "Momentálně nejsou k dispozici žádné aktivní Výzvy."
	}

	var b strings.Builder
	b.WriteString("Zde jsou aktuální aktivní Výzvy:\n")
	for _, d := range deals {
		b.WriteString("\n*")
		b.WriteString(d.Name)
		b.WriteString("*\n")
		if d.Description != "" {
			b.WriteString(d.Description)
			b.WriteString("\n")
		}
		if d.OriginalPrice != nil {
			b.WriteString(fmt.Sprintf("Cena: ~%s Kč~ -> *%s Kč*\n", domain.FormatPrice(*d.OriginalPrice), domain.FormatPrice(d.DealPrice)))
		} else {
			b.WriteString(fmt.Sprintf("Cena: *%s Kč*\n", domain.FormatPrice(d.DealPrice)))
		}
		b.WriteString("--------------------\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
