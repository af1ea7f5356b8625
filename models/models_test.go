package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test that orders encode dishes as [name, crosses] pairs
func TestOrderJSONEncoding(t *testing.T) {
	order := Order{
		Dishes: []Dish{
			{Name: "☕ Эспрессо", Crosses: 30},
			{Name: "🥐 Круассан", Crosses: 45},
		},
		Tag: TagStudent,
	}

	data, err := json.Marshal(&order)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dishes":[["☕ Эспрессо",30],["🥐 Круассан",45]],"tag":"student"}`, string(data))

	var decoded Order
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, order, decoded)
}

// Test decoding a payload written by an older version of the bot
func TestOrderJSONLegacyPayload(t *testing.T) {
	payload := `{"dishes": [["🥡 Лапша", 100]], "tag": null}`

	var order Order
	require.NoError(t, json.Unmarshal([]byte(payload), &order))
	require.Len(t, order.Dishes, 1)
	assert.Equal(t, 100, order.Dishes[0].Crosses)
	assert.Empty(t, order.Tag)
	assert.False(t, order.IsSpecial())
}

func TestDishUnmarshalErrors(t *testing.T) {
	var d Dish
	assert.Error(t, json.Unmarshal([]byte(`{"name":"x"}`), &d))
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &d))
	assert.Error(t, json.Unmarshal([]byte(`["x",1,2]`), &d))
	assert.Error(t, json.Unmarshal([]byte(`[1,"x"]`), &d))
}

func TestOrderTotalCrosses(t *testing.T) {
	order := Order{Dishes: []Dish{{"a", 10}, {"b", 20}, {"c", 30}}}
	assert.Equal(t, 60, order.TotalCrosses())

	empty := Order{}
	assert.Equal(t, 0, empty.TotalCrosses())
}

func TestNextOrderIndex(t *testing.T) {
	assert.Equal(t, 1, (&User{}).NextOrderIndex())
	assert.Equal(t, 11, (&User{TotalOrders: 10}).NextOrderIndex())
}
