package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Callback data for the main menu buttons
const (
	CallbackNewOrder = "order_new"
	CallbackMyOrder  = "order_my"
	CallbackDone     = "order_done"
)

// mainMenuKeyboard builds the inline keyboard with the main player actions
func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧾 Новый заказ", CallbackNewOrder),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Мой заказ", CallbackMyOrder),
			tgbotapi.NewInlineKeyboardButtonData("✅ Готово", CallbackDone),
		),
	)
}
