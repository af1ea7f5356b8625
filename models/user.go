package models

// User represents a player of the cafe game
type User struct {
	ID           int64  `json:"user_id" db:"user_id"`
	FirstName    string `json:"first_name" db:"first_name"`
	Level        int    `json:"level" db:"level"`
	TotalOrders  int    `json:"total_orders" db:"total_orders"`
	TotalCrosses int    `json:"total_crosses" db:"total_crosses"`
	Flags        SpecialFlags
}

// SpecialFlags tracks which one-time special orders a player has completed
type SpecialFlags struct {
	Student    bool
	DirtyPlate bool
	Critic     bool
	SecondChef bool
}

// NextOrderIndex returns the number of the player's next order (1-based)
func (u *User) NextOrderIndex() int {
	return u.TotalOrders + 1
}
