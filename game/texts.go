package game

import (
	"fmt"
	"strings"

	"github.com/mindevis/stitch-cafe/models"
)

// Static bot replies
const (
	SelectAction = "Выбери действие:"

	WrongChat = "🙅 Эта игра живёт в другом чате. Заходи в наше кафе!"

	GameComplete = "\n\n🎉 <b>Поздравляем!</b> Ты выполнил все 40 заказов и прошёл игру! Кафе гордится тобой!"

	TrophyGold = "\n\n🏆 <b>Золотой кубок!</b> 100 заказов — ты настоящая легенда кафе!"

	TrophyDiamond = "\n\n💎 <b>Бриллиантовый кубок!</b> 200 заказов — такого кафе ещё не видело!"

	EmptyDB = "📭 В базе пока нет ни одного игрока."

	NoPlayersInRating = "📭 В рейтинге пока нет игроков."

	TopSentDM = "📬 Статистика отправлена тебе в личные сообщения."

	StatsHeader = "📊 <b>Полная статистика игроков</b>\n"

	Top10Header = "🏆 <b>Топ-10 поваров кафе</b>\n"
)

// Generic error replies shown to the user when a handler fails
const (
	ErrStart     = "❌ Произошла ошибка при запуске. Попробуйте позже."
	ErrOrderNew  = "❌ Произошла ошибка при создании заказа. Попробуйте позже."
	ErrOrderView = "❌ Произошла ошибка при просмотре заказа. Попробуйте позже."
	ErrOrderDone = "❌ Произошла ошибка при завершении заказа. Попробуйте позже."
	ErrReset     = "❌ Произошла ошибка при сбросе данных. Попробуйте позже."
	ErrTop       = "❌ Произошла ошибка при получении рейтинга. Попробуйте позже."
)

// medals decorate the top-10 rating rows
var medals = []string{"🥇", "🥈", "🥉", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// Medal returns the rank decoration for a zero-based rating position
func Medal(index int) string {
	if index < len(medals) {
		return medals[index]
	}
	return fmt.Sprintf("%d.", index+1)
}

// Hello greets a player joining the game
func Hello(name string) string {
	return fmt.Sprintf(
		"👋 Привет, %s!\n\nДобро пожаловать в «Вышивальное кафе» — здесь каждый заказ вышивается крестиком. Бери заказы, вышивай блюда и расти от стажёра до шеф-повара!",
		name,
	)
}

// DishLine renders a single order position
func DishLine(d models.Dish) string {
	return fmt.Sprintf("• %s — %d крестиков", d.Name, d.Crosses)
}

// OrderLines renders all dishes of an order, one per line
func OrderLines(dishes []models.Dish) string {
	lines := make([]string, len(dishes))
	for i, d := range dishes {
		lines[i] = DishLine(d)
	}
	return strings.Join(lines, "\n")
}

// NewOrderMessage announces a fresh regular order
func NewOrderMessage(name string, orderNumber int, dishes []models.Dish, total int) string {
	return fmt.Sprintf(
		"🧾 %s, заказ №%d принят!\n\n%s\n\n🧵 Всего: <b>%d крестиков</b>",
		name, orderNumber, OrderLines(dishes), total,
	)
}

// AlreadyHasOrder tells the player to finish the current order first
func AlreadyHasOrder(name string) string {
	return fmt.Sprintf("⏳ %s, у тебя уже есть заказ в работе. Сначала закончи его!", name)
}

// ShowOrder renders the player's current order
func ShowOrder(name string, dishes []models.Dish, total int) string {
	return fmt.Sprintf(
		"📋 %s, твой текущий заказ:\n\n%s\n\n🧵 Всего: <b>%d крестиков</b>",
		name, OrderLines(dishes), total,
	)
}

// NoActiveOrder tells the player there is nothing to show or finish
func NoActiveOrder(name string) string {
	return fmt.Sprintf("🤷 %s, у тебя нет активного заказа. Возьми новый!", name)
}

// DoneOrder congratulates the player on a completed order
func DoneOrder(name string, n int, totalCrosses int, title string) string {
	return fmt.Sprintf(
		"✅ %s, заказ №%d выполнен! Всего вышито: <b>%d крестиков</b>.\nТвоё звание: %s",
		name, n, totalCrosses, title,
	)
}

// DoneWithLevelUp congratulates the player on a completed order and a new rank
func DoneWithLevelUp(name string, n int, title string, totalCrosses int) string {
	return fmt.Sprintf(
		"✅ %s, заказ №%d выполнен! Всего вышито: <b>%d крестиков</b>.\n\n🎊 Повышение! Новое звание: <b>%s</b>",
		name, n, totalCrosses, title,
	)
}

// StudentAppear announces the hungry student event
func StudentAppear(name string) string {
	return fmt.Sprintf(
		"🎒 %s, в кафе забежал голодный студент! Ему срочно нужна 🥡 лапша быстрого приготовления — всего <b>100 крестиков</b>. Успеешь?",
		name,
	)
}

// CriticAppear announces the restaurant critic event
func CriticAppear(name string) string {
	return fmt.Sprintf(
		"🎩 %s, в кафе пришёл ресторанный критик! Он заказал 🦪 устрицы — целых <b>1000 крестиков</b>. Не подведи кафе!",
		name,
	)
}

// DirtyPlateAppear announces the dirty plate event
func DirtyPlateAppear(name string, doubledCrosses int) string {
	return fmt.Sprintf(
		"🍽 %s, о нет — прошлый заказ вернули на грязной тарелке! Придётся вышить его заново в двойном размере: <b>%d крестиков</b>.",
		name, doubledCrosses,
	)
}

// SecondChefAppear announces the second chef event
func SecondChefAppear(name string, halfCrosses int, dishes []models.Dish) string {
	return fmt.Sprintf(
		"🤝 %s, на кухню вышел второй повар! Вы делите заказ пополам — с тебя всего <b>%d крестиков</b>:\n\n%s",
		name, halfCrosses, OrderLines(dishes),
	)
}

// AdminOnly rejects a non-admin caller
func AdminOnly(name string) string {
	return fmt.Sprintf("🔒 %s, эта команда доступна только администраторам.", name)
}

// ResetSuccess confirms a database wipe
func ResetSuccess(name string) string {
	return fmt.Sprintf("🧹 %s, база игроков очищена. Кафе открывается заново!", name)
}

// TopDMFail tells the admin the bot could not reach their DMs
func TopDMFail(name string) string {
	return fmt.Sprintf("✉️ %s, не получилось отправить статистику в личку. Напиши боту в ЛС и повтори команду.", name)
}

// StatsLine renders one row of the full statistics report
func StatsLine(num int, name string, orders int, levelTitle string, flags models.SpecialFlags) string {
	return fmt.Sprintf(
		"%d. %s — заказов: %d, звание: %s\n   студент %s | критик %s | тарелка %s | второй повар %s",
		num, name, orders, levelTitle,
		flagMark(flags.Student), flagMark(flags.Critic), flagMark(flags.DirtyPlate), flagMark(flags.SecondChef),
	)
}

// Top10Line renders one row of the top-10 rating
func Top10Line(medal string, name string, orders int, levelTitle string) string {
	return fmt.Sprintf("%s %s — заказов: %d, звание: %s", medal, name, orders, levelTitle)
}

// flagMark renders a completed/not-completed special event mark
func flagMark(done bool) string {
	if done {
		return "✅"
	}
	return "❌"
}
