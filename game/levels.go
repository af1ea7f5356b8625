package game

import "fmt"

// OrdersPerLevel is how many completed orders a level-up costs
const OrdersPerLevel = 10

// MaxLevel is the highest reachable level
const MaxLevel = 4

// levelTitles maps a level to the player's kitchen rank
var levelTitles = map[int]string{
	0: "🥄 Стажёр",
	1: "🍳 Помощник повара",
	2: "👨‍🍳 Повар",
	3: "🧑‍🍳 Су-шеф",
	4: "👩‍🍳 Шеф-повар",
}

// TitleFor returns the rank title for a level
func TitleFor(level int) string {
	if title, ok := levelTitles[level]; ok {
		return title
	}
	return fmt.Sprintf("Уровень %d", level)
}
