package bot

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/message"

	"blackjack/internal/config"
	"blackjack/internal/game"
	"blackjack/internal/i18n"
	"blackjack/internal/settings"
)

// sender is the part of tgbotapi.BotAPI the handler uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot      sender
	cfg      *config.Config
	settings settings.Repository
	games    *sessions
	logger   *slog.Logger
}

func NewHandler(bot sender, cfg *config.Config, repo settings.Repository, rules game.RulesFactory, logger *slog.Logger, opts ...game.Option) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		settings: repo,
		games:    newSessions(rules, logger, opts...),
		logger:   logger,
	}
}

// ============== helpers ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("failed to answer callback", "error", err)
	}
}

func (h *Handler) getChat(chatID int64) *settings.Chat {
	chat, err := h.settings.GetOrCreate(chatID, h.cfg.Lang)
	if err != nil {
		h.logger.Error("failed to load chat settings", "chat_id", chatID, "error", err)
		return &settings.Chat{ChatID: chatID, Locale: h.cfg.Lang}
	}
	return chat
}

func (h *Handler) printer(chatID int64) *message.Printer {
	return i18n.Printer(h.getChat(chatID).Locale)
}

// ============== formatting ==============

func formatHand(p *message.Printer, cards []game.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = i18n.CardName(p, c)
	}
	return strings.Join(names, ", ")
}

func formatTable(p *message.Printer, g *game.Game) string {
	return fmt.Sprintf("🃏 %s %s (%d)\n🎴 %s %s (%d)",
		p.Sprintf(i18n.DealerHasKey), formatHand(p, g.DealerHand()), g.DealerScore(),
		p.Sprintf(i18n.PlayerHasKey), formatHand(p, g.PlayerHand()), g.PlayerScore())
}

func formatResult(p *message.Printer, dealerWon bool) string {
	if dealerWon {
		return p.Sprintf(i18n.GameOverKey) + " 😔 " + p.Sprintf(i18n.DealerWonKey)
	}
	return p.Sprintf(i18n.GameOverKey) + " 🎉 " + p.Sprintf(i18n.PlayerWonKey)
}

// ============== commands ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID, h.printer(chatID).Sprintf(i18n.BotWelcomeKey))
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID, h.printer(chatID).Sprintf(i18n.BotHelpKey))
}

func (h *Handler) HandleStats(chatID int64) {
	p := h.printer(chatID)

	var playerWins, dealerWins int
	if sess := h.games.get(chatID); sess != nil {
		sess.mu.Lock()
		playerWins, dealerWins = sess.game.PlayerWins(), sess.game.DealerWins()
		sess.mu.Unlock()
	}

	h.send(chatID, p.Sprintf(i18n.BotStatsKey, playerWins, dealerWins))
}

func (h *Handler) HandleLang(chatID int64, args []string) {
	if len(args) == 0 {
		h.send(chatID, h.printer(chatID).Sprintf(i18n.BotLangUsageKey))
		return
	}

	tag, ok := i18n.Parse(args[0])
	if !ok {
		h.send(chatID, h.printer(chatID).Sprintf(i18n.BotLangUsageKey))
		return
	}

	chat := h.getChat(chatID)
	chat.Locale = tag.String()
	if err := h.settings.Save(chat); err != nil {
		h.logger.Error("failed to save chat settings", "chat_id", chatID, "error", err)
		h.send(chatID, i18n.Printer(chat.Locale).Sprintf(i18n.BotErrorKey))
		return
	}

	h.send(chatID, i18n.Printer(chat.Locale).Sprintf(i18n.BotLangSetKey))
}

func (h *Handler) HandlePlay(chatID int64) {
	p := h.printer(chatID)
	sess := h.games.getOrCreate(chatID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.game.NewGame() {
		h.sendWithKeyboard(chatID,
			p.Sprintf(i18n.BotInProgressKey)+"\n\n"+formatTable(p, sess.game),
			GameKeyboard(p))
		return
	}

	h.logger.Debug("round started", "chat_id", chatID, "game_id", sess.game.ID().String())
	h.sendWithKeyboard(chatID, formatTable(p, sess.game), GameKeyboard(p))
}

// ============== callbacks ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	if callback.Data == CallbackPlayAgain {
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID)
		return
	}

	p := h.printer(chatID)
	sess := h.games.get(chatID)
	if sess == nil {
		h.answerCallback(callback.ID, p.Sprintf(i18n.BotNoGameKey))
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.game.IsGameOver() {
		h.answerCallback(callback.ID, p.Sprintf(i18n.BotInactiveKey))
		return
	}

	sess.dealt.reset()
	switch callback.Data {
	case CallbackHit:
		h.handleHit(chatID, p, sess)
	case CallbackStand:
		h.handleStand(chatID, p, sess)
	}

	h.answerCallback(callback.ID, "")
}

func (h *Handler) handleHit(chatID int64, p *message.Printer, sess *session) {
	g := sess.game
	if !g.Hit() {
		h.sendWithKeyboard(chatID,
			p.Sprintf(i18n.BotCannotHitKey)+"\n\n"+formatTable(p, g),
			GameKeyboard(p))
		return
	}

	// A busted player has nothing left to decide.
	if g.PlayerScore() > game.MaxScore {
		h.handleStand(chatID, p, sess)
		return
	}

	h.sendWithKeyboard(chatID, h.withDealt(p, sess, formatTable(p, g)), GameKeyboard(p))
}

func (h *Handler) handleStand(chatID int64, p *message.Printer, sess *session) {
	g := sess.game
	g.Stand()

	dealerWon := g.IsDealerWinner()
	h.logger.Debug("round finished",
		"chat_id", chatID,
		"game_id", g.ID().String(),
		"dealer_won", dealerWon)

	h.sendWithKeyboard(chatID,
		h.withDealt(p, sess, formatTable(p, g))+"\n\n"+formatResult(p, dealerWon),
		EndGameKeyboard(p))
}

func (h *Handler) withDealt(p *message.Printer, sess *session, text string) string {
	if sess.dealt.updates == 0 {
		return text
	}
	return text + "\n" + p.Sprintf(i18n.BotCardsDealtKey, sess.dealt.updates)
}

// ============== messages ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	case "/stats":
		h.HandleStats(chatID)
	case "/lang":
		h.HandleLang(chatID, args)
	}
}
