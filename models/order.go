package models

import (
	"encoding/json"
	"fmt"
)

// Special order tags
const (
	TagStudent    = "student"
	TagCritic     = "critic"
	TagDirtyPlate = "dirty_plate"
	TagSecondChef = "second_chef"
)

// Dish is a single order position: a dish name and its cost in crosses.
//
// Dishes are stored in the database as two-element arrays ["name", crosses],
// matching the historical payload format.
type Dish struct {
	Name    string
	Crosses int
}

// MarshalJSON encodes the dish as ["name", crosses]
func (d Dish) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{d.Name, d.Crosses})
}

// UnmarshalJSON decodes a ["name", crosses] pair
func (d *Dish) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("dish must be a [name, crosses] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("dish must have exactly 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &d.Name); err != nil {
		return fmt.Errorf("invalid dish name: %w", err)
	}
	if err := json.Unmarshal(pair[1], &d.Crosses); err != nil {
		return fmt.Errorf("invalid dish crosses: %w", err)
	}
	return nil
}

// Order is a player's active order
type Order struct {
	Dishes []Dish `json:"dishes"`
	Tag    string `json:"tag,omitempty"`
}

// TotalCrosses sums the crosses of all dishes in the order
func (o *Order) TotalCrosses() int {
	total := 0
	for _, d := range o.Dishes {
		total += d.Crosses
	}
	return total
}

// IsSpecial reports whether the order came from a special event
func (o *Order) IsSpecial() bool {
	return o.Tag != ""
}

// LastOrder is a completed order kept around for the dirty plate event
type LastOrder struct {
	Dishes  []Dish `json:"dishes"`
	Crosses int    `json:"crosses"`
	Tag     string `json:"tag,omitempty"`
}
