package game

import (
	"math/rand"
	"time"

	"github.com/mindevis/stitch-cafe/models"
)

// OrderSize is the number of dishes in a regular order
const OrderSize = 3

// Generator produces orders and rolls special events.
//
// All randomness goes through a single rand.Rand so tests can pass a seeded
// source and get deterministic orders.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a generator seeded from the current time
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a generator with the given random source
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// RegularOrder generates a regular order for a player of the given level.
//
// One dish comes from the player's current tier, the rest from all unlocked
// tiers, without duplicates. Short pools are padded from tier 0.
func (g *Generator) RegularOrder(level int) []models.Dish {
	tier := dishTier(level)
	opened := unlockedDishes(tier)

	currentPool := dishesByTier[tier]
	if len(currentPool) == 0 {
		currentPool = dishesByTier[0]
	}
	current := currentPool[g.rnd.Intn(len(currentPool))]

	pool := make([]models.Dish, 0, len(opened))
	for _, d := range opened {
		if d != current {
			pool = append(pool, d)
		}
	}
	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	take := []models.Dish{current}
	for _, d := range pool {
		if len(take) == OrderSize {
			break
		}
		if !containsDish(take, d) {
			take = append(take, d)
		}
	}

	// Pad from the base tier if the unlocked pool was too small
	for _, d := range dishesByTier[0] {
		if len(take) == OrderSize {
			break
		}
		if !containsDish(take, d) {
			take = append(take, d)
		}
	}

	return take
}

// HalveOrder builds the second chef variant of an order: every dish at half
// price (at least 1 cross), with the first dish adjusted so the order total
// is exactly half of the original.
func HalveOrder(dishes []models.Dish) []models.Dish {
	total := 0
	for _, d := range dishes {
		total += d.Crosses
	}
	halfTotal := total / 2

	halved := make([]models.Dish, len(dishes))
	halfSum := 0
	for i, d := range dishes {
		crosses := d.Crosses / 2
		if crosses < 1 {
			crosses = 1
		}
		halved[i] = models.Dish{Name: d.Name, Crosses: crosses}
		halfSum += crosses
	}

	if len(halved) > 0 && halfSum != halfTotal {
		adjusted := halved[0].Crosses + (halfTotal - halfSum)
		if adjusted < 1 {
			adjusted = 1
		}
		halved[0].Crosses = adjusted
	}

	return halved
}

// DoubleOrder builds the dirty plate variant: the previous order with every
// dish at double price
func DoubleOrder(dishes []models.Dish) []models.Dish {
	doubled := make([]models.Dish, len(dishes))
	for i, d := range dishes {
		doubled[i] = models.Dish{Name: d.Name, Crosses: d.Crosses * 2}
	}
	return doubled
}

// containsDish reports whether the slice already holds the dish
func containsDish(dishes []models.Dish, dish models.Dish) bool {
	for _, d := range dishes {
		if d == dish {
			return true
		}
	}
	return false
}
