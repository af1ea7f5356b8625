package bot

import (
	"context"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/config"
	"github.com/mindevis/stitch-cafe/services"
)

// Bot runs the Telegram long-polling loop and dispatches updates
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      *config.Config
	services *services.Services
	logger   *zap.Logger
}

// New creates a new bot around an authorized Telegram API client
func New(api *tgbotapi.BotAPI, cfg *config.Config, srvs *services.Services, logger *zap.Logger) *Bot {
	return &Bot{
		api:      api,
		cfg:      cfg,
		services: srvs,
		logger:   logger,
	}
}

// Run starts update polling and blocks until the context is cancelled
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updateConfig.AllowedUpdates = []string{"message", "callback_query", "chat_member"}

	updates := b.api.GetUpdatesChan(updateConfig)

	b.logger.Info("bot is up and ready", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate routes a single update to its handler. A panic in a handler
// is logged and must not kill the polling loop.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic in update handler", zap.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.ChatMember != nil:
		b.handleChatMember(ctx, update.ChatMember)
	}
}

// handleCommand dispatches a bot command message
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	switch message.Command() {
	case "start":
		b.handleStart(ctx, message)
	case "new", "neworder":
		b.handleNewOrder(ctx, message.Chat.ID, message.From)
	case "my", "myorder":
		b.handleMyOrder(ctx, message.Chat.ID, message.From)
	case "done":
		b.handleDone(ctx, message.Chat.ID, message.From)
	case "reset":
		b.handleReset(ctx, message)
	case "top":
		b.handleTop(ctx, message)
	case "top10":
		b.handleTop10(ctx, message)
	}
}

// handleCallback acknowledges an inline button press and routes it to the
// same handlers the text commands use
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Warn("failed to answer callback query", zap.Error(err))
	}

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	switch query.Data {
	case CallbackNewOrder:
		b.handleNewOrder(ctx, chatID, query.From)
	case CallbackMyOrder:
		b.handleMyOrder(ctx, chatID, query.From)
	case CallbackDone:
		b.handleDone(ctx, chatID, query.From)
	}
}

// send delivers a plain HTML message to a chat
func (b *Bot) send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

// sendWithMenu delivers an HTML message with the main menu keyboard attached
func (b *Bot) sendWithMenu(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

// replyError sends a generic error line, ignoring delivery failures
func (b *Bot) replyError(chatID int64, text string) {
	if err := b.send(chatID, text); err != nil {
		b.logger.Warn("failed to send error reply", zap.Error(err))
	}
}

// isGameChat reports whether game commands are allowed in the chat
func (b *Bot) isGameChat(chatID int64) bool {
	return b.cfg.ChatID == 0 || chatID == b.cfg.ChatID
}

// FormatMention renders a user as a clickable tg://user link
func FormatMention(userID int64, firstName string) string {
	return fmt.Sprintf("<a href='tg://user?id=%d'>%s</a>", userID, html.EscapeString(firstName))
}
