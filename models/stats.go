package models

// PlayerStats is a single row of the full statistics report
type PlayerStats struct {
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name"`
	Level       int    `json:"level"`
	TotalOrders int    `json:"total_orders"`
	Flags       SpecialFlags
}

// LeaderboardEntry is a single row of the top-players rating
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name"`
	Level       int    `json:"level"`
	LevelTitle  string `json:"level_title"`
	TotalOrders int    `json:"total_orders"`
}
