package handler

import (
	"strings"

	"github.com/Kamibony/DealUpCool/internal/metrics"
	"github.com/Kamibony/DealUpCool/internal/middleware"
	"github.com/Kamibony/DealUpCool/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Consent reply keyboard texts, matched verbatim in handleText
const (
	consentYesText = "Ano, souhlasím 👍"
	consentNoText  = "Ne, děkuji"
)

// Callback data prefixes for dynamic inline buttons
const (
	dealCallbackPrefix   = "deal_"
	cancelCallbackPrefix = "cancel_"
	cancelAbortCallback  = "cancel_abort"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	users          *service.UserService
	deals          *service.DealService
	selection      *service.SelectionService
	collection     *service.CollectionService
	participations *service.ParticipationService
	admin          *service.DealAdminService
	sessions       *service.SessionStore
	metrics        *metrics.Metrics
	logger         *zap.Logger
	adminIDs       []int64
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users *service.UserService,
	deals *service.DealService,
	selection *service.SelectionService,
	collection *service.CollectionService,
	participations *service.ParticipationService,
	admin *service.DealAdminService,
	sessions *service.SessionStore,
	m *metrics.Metrics,
	logger *zap.Logger,
	adminIDs []int64,
) *Handler {
	return &Handler{
		bot:            bot,
		users:          users,
		deals:          deals,
		selection:      selection,
		collection:     collection,
		participations: participations,
		admin:          admin,
		sessions:       sessions,
		metrics:        m,
		logger:         logger,
		adminIDs:       adminIDs,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/vyzvy", h.handleListDeals)
	h.bot.Handle("/zrusit_ucast", h.handleCancelParticipationStart)
	h.bot.Handle("/cancel", h.handleCancelAction)

	// Admin flow behind the allow-list
	h.bot.Handle("/nova_vyzva", h.handleNewDeal, middleware.AdminOnly(h.adminIDs, h.logger))

	// Text messages (collection answers, admin drafts, consent replies)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// displayName returns the sender's first name with a neutral fallback
func displayName(u *tele.User) string {
	if u != nil && u.FirstName != "" {
		return u.FirstName
	}
	return "Uživateli"
}

// editOrSend edits the callback's message in place when handling a button
// press, and sends a fresh message otherwise
func (h *Handler) editOrSend(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}

	if err := c.Edit(text, opts...); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		h.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Send(text, opts...)
	}
	return c.Respond()
}
