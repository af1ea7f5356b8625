package game

import "github.com/mindevis/stitch-cafe/models"

// Special event kinds
const (
	// EventRegular replaces the order with a single fixed dish
	EventRegular = "regular"
	// EventDoublePrevious repeats the previous order at double price
	EventDoublePrevious = "double_previous"
	// EventHalfNewOrder generates a fresh order at half price
	EventHalfNewOrder = "half_new_order"
)

// SpecialEvent describes a one-time game event that replaces a regular order
type SpecialEvent struct {
	Tag           string
	Kind          string
	Dish          models.Dish
	Probability   float64
	MinOrderIndex int
	MaxOrderIndex int
	done          func(models.SpecialFlags) bool
}

// specialEvents are checked in this order; the first one that passes its
// window, done-flag and probability checks wins.
var specialEvents = []SpecialEvent{
	{
		Tag:           models.TagDirtyPlate,
		Kind:          EventDoublePrevious,
		Probability:   0.15,
		MinOrderIndex: 3,
		MaxOrderIndex: 40,
		done:          func(f models.SpecialFlags) bool { return f.DirtyPlate },
	},
	{
		Tag:           models.TagStudent,
		Kind:          EventRegular,
		Dish:          studentDish,
		Probability:   0.12,
		MinOrderIndex: 3,
		MaxOrderIndex: 40,
		done:          func(f models.SpecialFlags) bool { return f.Student },
	},
	{
		Tag:           models.TagCritic,
		Kind:          EventRegular,
		Dish:          criticDish,
		Probability:   0.10,
		MinOrderIndex: 20,
		MaxOrderIndex: 40,
		done:          func(f models.SpecialFlags) bool { return f.Critic },
	},
	{
		Tag:           models.TagSecondChef,
		Kind:          EventHalfNewOrder,
		Probability:   0.12,
		MinOrderIndex: 20,
		MaxOrderIndex: 40,
		done:          func(f models.SpecialFlags) bool { return f.SecondChef },
	},
}

// RollSpecial checks whether a special order should replace the regular one.
//
// For each event: the order index must fall inside the event window, the
// player must not have completed the event yet, and the probability roll
// must pass. Returns nil when no event triggers.
func (g *Generator) RollSpecial(orderIndex int, flags models.SpecialFlags) *SpecialEvent {
	for i := range specialEvents {
		event := &specialEvents[i]
		if orderIndex < event.MinOrderIndex || orderIndex > event.MaxOrderIndex {
			continue
		}
		if event.done(flags) {
			continue
		}
		if g.rnd.Float64() < event.Probability {
			return event
		}
	}
	return nil
}
