package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mindevis/stitch-cafe/models"
)

// UserRepository interface defines player database operations
type UserRepository interface {
	Ensure(ctx context.Context, userID int64, firstName string) error
	GetByID(ctx context.Context, userID int64, firstName string) (*models.User, error)
	SaveActiveOrder(ctx context.Context, userID int64, order *models.Order) error
	GetActiveOrder(ctx context.Context, userID int64) (*models.Order, error)
	ClearActiveOrder(ctx context.Context, userID int64) error
	SaveLastOrder(ctx context.Context, userID int64, last *models.LastOrder) error
	GetLastOrder(ctx context.Context, userID int64) (*models.LastOrder, error)
	CompleteOrder(ctx context.Context, userID int64, update *models.User) error
	TopByOrders(ctx context.Context, limit int) ([]models.User, error)
	AllByOrders(ctx context.Context) ([]models.User, error)
	ResetAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `user_id, first_name, level, total_orders, total_crosses,
	       has_student_done, has_dirty_plate_done, has_critic_done, has_second_chef_done`

// Ensure creates the player row if it does not exist yet
func (r *userRepository) Ensure(ctx context.Context, userID int64, firstName string) error {
	if firstName == "" {
		firstName = "Гость"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (user_id, first_name) VALUES (?, ?)",
		userID, firstName,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure user %d: %w", userID, err)
	}
	return nil
}

// GetByID retrieves a player, creating the row first if needed
func (r *userRepository) GetByID(ctx context.Context, userID int64, firstName string) (*models.User, error) {
	if err := r.Ensure(ctx, userID, firstName); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE user_id = ?", userColumns)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.FirstName,
		&user.Level,
		&user.TotalOrders,
		&user.TotalCrosses,
		&user.Flags.Student,
		&user.Flags.DirtyPlate,
		&user.Flags.Critic,
		&user.Flags.SecondChef,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	return &user, nil
}

// SaveActiveOrder stores the player's active order as a JSON payload
func (r *userRepository) SaveActiveOrder(ctx context.Context, userID int64, order *models.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode active order for user %d: %w", userID, err)
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE users SET active_order_json = ? WHERE user_id = ?",
		string(payload), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to save active order for user %d: %w", userID, err)
	}
	return nil
}

// GetActiveOrder returns the player's active order, or nil when there is none
func (r *userRepository) GetActiveOrder(ctx context.Context, userID int64) (*models.Order, error) {
	var payload sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT active_order_json FROM users WHERE user_id = ?", userID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active order for user %d: %w", userID, err)
	}

	if !payload.Valid || payload.String == "" {
		return nil, nil
	}

	var order models.Order
	if err := json.Unmarshal([]byte(payload.String), &order); err != nil {
		return nil, fmt.Errorf("failed to decode active order for user %d: %w", userID, err)
	}
	return &order, nil
}

// ClearActiveOrder removes the player's active order
func (r *userRepository) ClearActiveOrder(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET active_order_json = NULL WHERE user_id = ?", userID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear active order for user %d: %w", userID, err)
	}
	return nil
}

// SaveLastOrder stores the player's last completed order (for the dirty plate event)
func (r *userRepository) SaveLastOrder(ctx context.Context, userID int64, last *models.LastOrder) error {
	payload, err := json.Marshal(last)
	if err != nil {
		return fmt.Errorf("failed to encode last order for user %d: %w", userID, err)
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE users SET last_order_json = ? WHERE user_id = ?",
		string(payload), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to save last order for user %d: %w", userID, err)
	}
	return nil
}

// GetLastOrder returns the player's last completed order, or nil
func (r *userRepository) GetLastOrder(ctx context.Context, userID int64) (*models.LastOrder, error) {
	var payload sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT last_order_json FROM users WHERE user_id = ?", userID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last order for user %d: %w", userID, err)
	}

	if !payload.Valid || payload.String == "" {
		return nil, nil
	}

	var last models.LastOrder
	if err := json.Unmarshal([]byte(payload.String), &last); err != nil {
		return nil, fmt.Errorf("failed to decode last order for user %d: %w", userID, err)
	}
	return &last, nil
}

// CompleteOrder applies the new totals, level and flags and clears the active
// order in a single update
func (r *userRepository) CompleteOrder(ctx context.Context, userID int64, update *models.User) error {
	query := `
		UPDATE users
		SET total_orders = ?, total_crosses = ?, level = ?,
		    has_student_done = ?, has_dirty_plate_done = ?,
		    has_critic_done = ?, has_second_chef_done = ?,
		    active_order_json = NULL
		WHERE user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		update.TotalOrders,
		update.TotalCrosses,
		update.Level,
		update.Flags.Student,
		update.Flags.DirtyPlate,
		update.Flags.Critic,
		update.Flags.SecondChef,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete order for user %d: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user %d not found", userID)
	}

	return nil
}

// TopByOrders retrieves the best players, most orders first
func (r *userRepository) TopByOrders(ctx context.Context, limit int) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		ORDER BY total_orders DESC, level DESC
		LIMIT ?
	`, userColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// AllByOrders retrieves every player, most orders first
func (r *userRepository) AllByOrders(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		ORDER BY total_orders DESC, level DESC
	`, userColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ResetAll deletes every player row
func (r *userRepository) ResetAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return fmt.Errorf("failed to reset users: %w", err)
	}
	return nil
}

// Count returns the total number of players
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// scanUsers reads user rows into models
func scanUsers(rows *sql.Rows) ([]models.User, error) {
	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.Level,
			&user.TotalOrders,
			&user.TotalCrosses,
			&user.Flags.Student,
			&user.Flags.DirtyPlate,
			&user.Flags.Critic,
			&user.Flags.SecondChef,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
