package game

import "github.com/mindevis/stitch-cafe/models"

// maxDishTier is the highest dish tier; levels above it keep drawing from it
const maxDishTier = 3

// dishesByTier is the cafe menu. A player's tier is min(level, maxDishTier);
// an order mixes dishes from the current tier and every tier below it.
var dishesByTier = map[int][]models.Dish{
	0: {
		{Name: "☕ Эспрессо", Crosses: 30},
		{Name: "🍵 Зелёный чай", Crosses: 30},
		{Name: "🍪 Овсяное печенье", Crosses: 35},
		{Name: "🥐 Круассан", Crosses: 45},
		{Name: "🧁 Маффин с черникой", Crosses: 50},
		{Name: "🥪 Сэндвич с сыром", Crosses: 60},
	},
	1: {
		{Name: "🥞 Блинчики с мёдом", Crosses: 80},
		{Name: "🍩 Пончик с глазурью", Crosses: 85},
		{Name: "🥗 Овощной салат", Crosses: 90},
		{Name: "🍰 Чизкейк", Crosses: 100},
		{Name: "🍕 Пицца «Маргарита»", Crosses: 120},
		{Name: "🍝 Паста карбонара", Crosses: 150},
	},
	2: {
		{Name: "🍜 Рамэн", Crosses: 180},
		{Name: "🌮 Тако с курицей", Crosses: 190},
		{Name: "🍔 Фирменный бургер", Crosses: 200},
		{Name: "🍣 Суши-сет", Crosses: 220},
		{Name: "🍛 Карри с рисом", Crosses: 230},
		{Name: "🥘 Паэлья", Crosses: 250},
	},
	3: {
		{Name: "🍱 Бенто-бокс", Crosses: 350},
		{Name: "🥩 Стейк рибай", Crosses: 400},
		{Name: "🦞 Лобстер на гриле", Crosses: 450},
		{Name: "🍲 Буйабес", Crosses: 480},
		{Name: "🦆 Утка по-пекински", Crosses: 500},
		{Name: "🎂 Праздничный торт", Crosses: 600},
	},
}

// Special event dishes
var (
	studentDish = models.Dish{Name: "🥡 Лапша быстрого приготовления", Crosses: 100}
	criticDish  = models.Dish{Name: "🦪 Устрицы", Crosses: 1000}
)

// dishTier returns the dish tier unlocked at the given level
func dishTier(level int) int {
	if level > maxDishTier {
		return maxDishTier
	}
	if level < 0 {
		return 0
	}
	return level
}

// unlockedDishes returns every dish available at the given tier and below
func unlockedDishes(tier int) []models.Dish {
	var opened []models.Dish
	for lv := 0; lv <= tier; lv++ {
		opened = append(opened, dishesByTier[lv]...)
	}
	return opened
}
