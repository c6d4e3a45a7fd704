package handler

import (
	"fmt"

	"github.com/Kamibony/DealUpCool/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: registers the user and asks for consent
func (h *Handler) handleStart(c tele.Context) error {
	user := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	if err := h.users.Register(user.ID, user.FirstName, user.LastName, user.Username); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send("Omlouvám se, nastala interní chyba.")
	}

	welcome := fmt.Sprintf(
		"Ahoj %s! Vítej v DealUpBotu.\n\n"+
			"Pomáhám lidem spojit se pro kolektivní nákupy ('Výzvy') a získat tak lepší ceny.\n\n"+
			"Než začneme, potřebuji tvůj *souhlas se zpracováním údajů* (Telegram ID, jméno) "+
			"a *zasíláním nabídek* ('Výzev'). Souhlasíš?",
		displayName(user),
	)

	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(consentYesText)),
		menu.Row(menu.Text(consentNoText)),
	)

	return c.Send(welcome, menu)
}

// handleHelp sends the command overview
func (h *Handler) handleHelp(c tele.Context) error {
	help := "Jsem DealUpBot a pomohu ti s kolektivními nákupy ('Výzvami').\n\n" +
		"Základní příkazy:\n" +
		"/start - Úvod a udělení souhlasu.\n" +
		"/vyzvy - Zobrazí aktuální aktivní Výzvy.\n" +
		"/zrusit_ucast - Umožní zrušit tvou účast v aktivní Výzvě.\n" +
		"/help - Zobrazí tuto nápovědu.\n" +
		"/cancel - Zruší aktuálně probíhající akci (např. sběr údajů).\n"
	return c.Send(help, tele.ModeDefault)
}

// handleConsent records the user's consent decision
func (h *Handler) handleConsent(c tele.Context, status domain.ConsentStatus) error {
	userID := c.Sender().ID

	h.logger.Info("User answered consent",
		zap.Int64("user_id", userID),
		zap.String("status", string(status)),
	)

	remove := &tele.ReplyMarkup{RemoveKeyboard: true}

	if err := h.users.SetConsent(userID, status); err != nil {
		h.logger.Error("Failed to store consent", zap.Error(err))
		return c.Send("Chyba při ukládání volby.", remove)
	}

	if status == domain.ConsentGranted {
		if err := c.Send("Děkuji za souhlas! 🎉 Nyní ti mohu zasílat zajímavé 'Výzvy'.", remove); err != nil {
			return err
		}
		return h.handleListDeals(c)
	}

	return c.Send("Rozumím. Nebudu ti tedy zasílat žádné nabídky. Kdykoliv můžeš začít znovu přes /start.", remove)
}
