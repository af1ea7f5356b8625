package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/game"
	"github.com/mindevis/stitch-cafe/models"
	"github.com/mindevis/stitch-cafe/userctx"
)

// handleStart registers the player and greets them with the main menu
func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	from := message.From
	chatID := message.Chat.ID

	if err := b.services.Game.StartPlayer(ctx, from.ID, from.FirstName); err != nil {
		b.logger.Error("failed to handle /start",
			zap.Int64("user_id", from.ID), zap.Error(err))
		b.replyError(chatID, game.ErrStart)
		return
	}

	hello := tgbotapi.NewMessage(chatID, game.Hello(FormatMention(from.ID, from.FirstName)))
	hello.ParseMode = tgbotapi.ModeHTML
	hello.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	if _, err := b.api.Send(hello); err != nil {
		b.logger.Warn("failed to send greeting", zap.Error(err))
		return
	}

	if err := b.sendWithMenu(chatID, game.SelectAction); err != nil {
		b.logger.Warn("failed to send main menu", zap.Error(err))
	}
}

// handleNewOrder gives the player a new order
func (b *Bot) handleNewOrder(ctx context.Context, chatID int64, from *tgbotapi.User) {
	if !b.isGameChat(chatID) {
		b.replyError(chatID, game.WrongChat)
		return
	}

	outcome, err := b.services.Game.NewOrder(ctx, from.ID, from.FirstName)
	if err != nil {
		b.logger.Error("failed to create order",
			zap.Int64("user_id", from.ID), zap.Error(err))
		b.replyError(chatID, game.ErrOrderNew)
		return
	}

	mention := FormatMention(from.ID, from.FirstName)

	var text string
	switch {
	case outcome.AlreadyActive:
		text = game.AlreadyHasOrder(mention)
	case outcome.Tag == models.TagStudent:
		text = game.StudentAppear(mention)
	case outcome.Tag == models.TagCritic:
		text = game.CriticAppear(mention)
	case outcome.Tag == models.TagDirtyPlate:
		text = game.DirtyPlateAppear(mention, outcome.Total)
	case outcome.Tag == models.TagSecondChef:
		text = game.SecondChefAppear(mention, outcome.Total, outcome.Dishes)
	default:
		text = game.NewOrderMessage(mention, outcome.OrderNumber, outcome.Dishes, outcome.Total)
	}

	if err := b.sendWithMenu(chatID, text); err != nil {
		b.logger.Warn("failed to send order reply", zap.Error(err))
	}
}

// handleMyOrder shows the player's current order
func (b *Bot) handleMyOrder(ctx context.Context, chatID int64, from *tgbotapi.User) {
	if !b.isGameChat(chatID) {
		b.replyError(chatID, game.WrongChat)
		return
	}

	view, err := b.services.Game.CurrentOrder(ctx, from.ID, from.FirstName)
	if err != nil {
		b.logger.Error("failed to view order",
			zap.Int64("user_id", from.ID), zap.Error(err))
		b.replyError(chatID, game.ErrOrderView)
		return
	}

	mention := FormatMention(from.ID, from.FirstName)

	text := game.NoActiveOrder(mention)
	if view.HasOrder {
		text = game.ShowOrder(mention, view.Dishes, view.Total)
	}

	if err := b.sendWithMenu(chatID, text); err != nil {
		b.logger.Warn("failed to send order view", zap.Error(err))
	}
}

// handleDone completes the player's active order
func (b *Bot) handleDone(ctx context.Context, chatID int64, from *tgbotapi.User) {
	if !b.isGameChat(chatID) {
		b.replyError(chatID, game.WrongChat)
		return
	}

	result, err := b.services.Game.FinishOrder(ctx, from.ID, from.FirstName)
	if err != nil {
		b.logger.Error("failed to finish order",
			zap.Int64("user_id", from.ID), zap.Error(err))
		b.replyError(chatID, game.ErrOrderDone)
		return
	}

	mention := FormatMention(from.ID, from.FirstName)

	if !result.Completed {
		if err := b.sendWithMenu(chatID, game.NoActiveOrder(mention)); err != nil {
			b.logger.Warn("failed to send completion reply", zap.Error(err))
		}
		return
	}

	var text string
	if result.LevelChanged {
		text = game.DoneWithLevelUp(mention, result.OrderNumber, result.Title, result.TotalCrosses)
	} else {
		text = game.DoneOrder(mention, result.OrderNumber, result.TotalCrosses, result.Title)
	}

	switch result.OrderNumber {
	case 40:
		text += game.GameComplete
	case 100:
		text += game.TrophyGold
	case 200:
		text += game.TrophyDiamond
	}

	if err := b.sendWithMenu(chatID, text); err != nil {
		b.logger.Warn("failed to send completion reply", zap.Error(err))
	}
}

// handleReset wipes the player database. Admins only.
func (b *Bot) handleReset(ctx context.Context, message *tgbotapi.Message) {
	from := message.From
	chatID := message.Chat.ID
	mention := FormatMention(from.ID, from.FirstName)

	if !b.cfg.IsAdmin(from.ID) {
		if err := b.send(chatID, game.AdminOnly(mention)); err != nil {
			b.logger.Warn("failed to send admin rejection", zap.Error(err))
		}
		return
	}

	ctx = userctx.WithActor(ctx, from.ID, from.FirstName)
	if err := b.services.Stats.Reset(ctx); err != nil {
		b.logger.Error("failed to reset data",
			zap.Int64("admin_id", from.ID), zap.Error(err))
		b.replyError(chatID, game.ErrReset)
		return
	}

	if err := b.send(chatID, game.ResetSuccess(mention)); err != nil {
		b.logger.Warn("failed to send reset confirmation", zap.Error(err))
	}
}

// handleTop sends the full player statistics to the admin's direct messages
func (b *Bot) handleTop(ctx context.Context, message *tgbotapi.Message) {
	from := message.From
	chatID := message.Chat.ID
	mention := FormatMention(from.ID, from.FirstName)

	if !b.cfg.IsAdmin(from.ID) {
		if err := b.send(chatID, game.AdminOnly(mention)); err != nil {
			b.logger.Warn("failed to send admin rejection", zap.Error(err))
		}
		return
	}

	stats, err := b.services.Stats.FullStats(ctx)
	if err != nil {
		b.logger.Error("failed to fetch full stats", zap.Error(err))
		b.replyError(chatID, game.ErrTop)
		return
	}

	text := game.EmptyDB
	if len(stats) > 0 {
		lines := []string{game.StatsHeader}
		for i, row := range stats {
			lines = append(lines, game.StatsLine(i+1, row.FirstName, row.TotalOrders,
				game.TitleFor(row.Level), row.Flags))
		}
		text = strings.Join(lines, "\n")
	}

	// Stats go to the admin's DMs, not into the group chat
	if err := b.send(from.ID, text); err != nil {
		b.logger.Warn("failed to DM stats to admin",
			zap.Int64("admin_id", from.ID), zap.Error(err))
		if !message.Chat.IsPrivate() {
			if err := b.send(chatID, game.TopDMFail(mention)); err != nil {
				b.logger.Warn("failed to send DM-failure notice", zap.Error(err))
			}
		}
		return
	}

	if !message.Chat.IsPrivate() {
		if err := b.send(chatID, game.TopSentDM); err != nil {
			b.logger.Warn("failed to send DM confirmation", zap.Error(err))
		}
	}
}

// handleTop10 posts the top-10 rating into the game chat. Admins only.
func (b *Bot) handleTop10(ctx context.Context, message *tgbotapi.Message) {
	from := message.From
	chatID := message.Chat.ID
	mention := FormatMention(from.ID, from.FirstName)

	if !b.cfg.IsAdmin(from.ID) {
		if err := b.send(chatID, game.AdminOnly(mention)); err != nil {
			b.logger.Warn("failed to send admin rejection", zap.Error(err))
		}
		return
	}

	// The rating is only posted in the game chat itself
	if b.cfg.GameChatOnly() && chatID != b.cfg.ChatID {
		return
	}

	entries, err := b.services.Stats.Leaderboard(ctx, 10)
	if err != nil {
		b.logger.Error("failed to fetch top-10", zap.Error(err))
		b.replyError(chatID, game.ErrTop)
		return
	}

	if len(entries) == 0 {
		if err := b.send(chatID, game.NoPlayersInRating); err != nil {
			b.logger.Warn("failed to send empty rating notice", zap.Error(err))
		}
		return
	}

	lines := []string{game.Top10Header}
	for i, entry := range entries {
		lines = append(lines, game.Top10Line(game.Medal(i),
			FormatMention(entry.UserID, entry.FirstName), entry.TotalOrders, entry.LevelTitle))
	}

	if err := b.send(chatID, strings.Join(lines, "\n")); err != nil {
		b.logger.Warn("failed to send top-10", zap.Error(err))
	}
}

// handleChatMember greets users joining the game chat and registers them
func (b *Bot) handleChatMember(ctx context.Context, event *tgbotapi.ChatMemberUpdated) {
	if !b.cfg.GameChatOnly() || event.Chat.ID != b.cfg.ChatID {
		return
	}

	oldStatus := event.OldChatMember.Status
	newStatus := event.NewChatMember.Status
	if oldStatus == "member" || newStatus != "member" {
		return
	}

	member := event.NewChatMember.User
	if member == nil || member.IsBot {
		return
	}

	if err := b.services.Game.StartPlayer(ctx, member.ID, member.FirstName); err != nil {
		b.logger.Error("failed to register new member",
			zap.Int64("user_id", member.ID), zap.Error(err))
		return
	}

	hello := tgbotapi.NewMessage(event.Chat.ID, game.Hello(FormatMention(member.ID, member.FirstName)))
	hello.ParseMode = tgbotapi.ModeHTML
	hello.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	if _, err := b.api.Send(hello); err != nil {
		b.logger.Warn("failed to greet new member", zap.Error(err))
		return
	}

	if err := b.sendWithMenu(event.Chat.ID, game.SelectAction); err != nil {
		b.logger.Warn("failed to send menu to new member", zap.Error(err))
	}
}
