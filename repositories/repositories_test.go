package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindevis/stitch-cafe/database"
	"github.com/mindevis/stitch-cafe/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := fmt.Sprintf("test_%s_%d.db", time.Now().Format("20060102150405"), time.Now().UnixNano())

	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func TestUserRepositoryEnsureAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// GetByID auto-creates missing players
	user, err := repo.GetByID(ctx, 100, "Аня")
	require.NoError(t, err)
	assert.Equal(t, int64(100), user.ID)
	assert.Equal(t, "Аня", user.FirstName)
	assert.Equal(t, 0, user.Level)
	assert.Equal(t, 0, user.TotalOrders)

	// Ensure is idempotent and keeps the original name
	require.NoError(t, repo.Ensure(ctx, 100, "Другое имя"))
	user, err = repo.GetByID(ctx, 100, "Другое имя")
	require.NoError(t, err)
	assert.Equal(t, "Аня", user.FirstName)

	// Empty names fall back to a guest placeholder
	user, err = repo.GetByID(ctx, 200, "")
	require.NoError(t, err)
	assert.Equal(t, "Гость", user.FirstName)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUserRepositoryActiveOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1, "Игрок")
	require.NoError(t, err)

	// No order yet
	order, err := repo.GetActiveOrder(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, order)

	// Save and read back
	saved := &models.Order{
		Dishes: []models.Dish{{Name: "☕ Эспрессо", Crosses: 30}, {Name: "🥐 Круассан", Crosses: 45}},
		Tag:    models.TagStudent,
	}
	require.NoError(t, repo.SaveActiveOrder(ctx, 1, saved))

	order, err = repo.GetActiveOrder(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, saved.Dishes, order.Dishes)
	assert.Equal(t, models.TagStudent, order.Tag)

	// Clear
	require.NoError(t, repo.ClearActiveOrder(ctx, 1))
	order, err = repo.GetActiveOrder(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, order)

	// Unknown player has no order rather than an error
	order, err = repo.GetActiveOrder(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestUserRepositoryLastOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1, "Игрок")
	require.NoError(t, err)

	last, err := repo.GetLastOrder(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, last)

	saved := &models.LastOrder{
		Dishes:  []models.Dish{{Name: "🍜 Рамэн", Crosses: 180}},
		Crosses: 180,
	}
	require.NoError(t, repo.SaveLastOrder(ctx, 1, saved))

	last, err = repo.GetLastOrder(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 180, last.Crosses)
	assert.Empty(t, last.Tag)
}

func TestUserRepositoryCompleteOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.GetByID(ctx, 1, "Игрок")
	require.NoError(t, err)

	require.NoError(t, repo.SaveActiveOrder(ctx, 1, &models.Order{
		Dishes: []models.Dish{{Name: "☕ Эспрессо", Crosses: 30}},
	}))

	user.TotalOrders = 10
	user.TotalCrosses = 950
	user.Level = 1
	user.Flags.Student = true
	require.NoError(t, repo.CompleteOrder(ctx, 1, user))

	updated, err := repo.GetByID(ctx, 1, "Игрок")
	require.NoError(t, err)
	assert.Equal(t, 10, updated.TotalOrders)
	assert.Equal(t, 950, updated.TotalCrosses)
	assert.Equal(t, 1, updated.Level)
	assert.True(t, updated.Flags.Student)
	assert.False(t, updated.Flags.Critic)

	// Completing clears the active order
	order, err := repo.GetActiveOrder(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, order)

	// Unknown player is an error
	err = repo.CompleteOrder(ctx, 999, user)
	assert.Error(t, err)
}

func TestUserRepositoryOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	players := []struct {
		id     int64
		name   string
		orders int
		level  int
	}{
		{1, "Первый", 25, 2},
		{2, "Второй", 25, 1},
		{3, "Третий", 40, 4},
		{4, "Четвёртый", 5, 0},
	}
	for _, p := range players {
		u, err := repo.GetByID(ctx, p.id, p.name)
		require.NoError(t, err)
		u.TotalOrders = p.orders
		u.Level = p.level
		require.NoError(t, repo.CompleteOrder(ctx, p.id, u))
	}

	top, err := repo.TopByOrders(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Третий", top[0].FirstName)
	assert.Equal(t, "Первый", top[1].FirstName) // same orders, higher level first
	assert.Equal(t, "Второй", top[2].FirstName)

	all, err := repo.AllByOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Четвёртый", all[3].FirstName)
}

func TestUserRepositoryResetAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1, "Игрок")
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, 2, "Другой")
	require.NoError(t, err)

	require.NoError(t, repo.ResetAll(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAuditRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &models.AuditLogEntry{
		Actor:  "111 (Админ)",
		Action: "reset",
		Detail: "wiped 2 players",
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM audit_log").Scan(&count))
	assert.Equal(t, 1, count)
}
