package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/mindevis/stitch-cafe/models"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users  map[int64]*models.User
	active map[int64]*models.Order
	last   map[int64]*models.LastOrder
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  map[int64]*models.User{},
		active: map[int64]*models.Order{},
		last:   map[int64]*models.LastOrder{},
	}
}

func (f *fakeUserRepo) Ensure(_ context.Context, userID int64, firstName string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[userID]; !ok {
		if firstName == "" {
			firstName = "Гость"
		}
		f.users[userID] = &models.User{ID: userID, FirstName: firstName}
	}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID int64, firstName string) (*models.User, error) {
	if err := f.Ensure(ctx, userID, firstName); err != nil {
		return nil, err
	}
	u := *f.users[userID]
	return &u, nil
}

func (f *fakeUserRepo) SaveActiveOrder(_ context.Context, userID int64, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.active[userID] = order
	return nil
}

func (f *fakeUserRepo) GetActiveOrder(_ context.Context, userID int64) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.active[userID], nil
}

func (f *fakeUserRepo) ClearActiveOrder(_ context.Context, userID int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.active, userID)
	return nil
}

func (f *fakeUserRepo) SaveLastOrder(_ context.Context, userID int64, last *models.LastOrder) error {
	if f.err != nil {
		return f.err
	}
	f.last[userID] = last
	return nil
}

func (f *fakeUserRepo) GetLastOrder(_ context.Context, userID int64) (*models.LastOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.last[userID], nil
}

func (f *fakeUserRepo) CompleteOrder(_ context.Context, userID int64, update *models.User) error {
	if f.err != nil {
		return f.err
	}
	stored, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user %d not found", userID)
	}
	stored.TotalOrders = update.TotalOrders
	stored.TotalCrosses = update.TotalCrosses
	stored.Level = update.Level
	stored.Flags = update.Flags
	delete(f.active, userID)
	return nil
}

func (f *fakeUserRepo) TopByOrders(ctx context.Context, limit int) ([]models.User, error) {
	all, err := f.AllByOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeUserRepo) AllByOrders(_ context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []models.User
	for _, u := range f.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].TotalOrders != all[j].TotalOrders {
			return all[i].TotalOrders > all[j].TotalOrders
		}
		return all[i].Level > all[j].Level
	})
	return all, nil
}

func (f *fakeUserRepo) ResetAll(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.users = map[int64]*models.User{}
	f.active = map[int64]*models.Order{}
	f.last = map[int64]*models.LastOrder{}
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.users), nil
}

// fakeAuditRepo records audit entries in memory
type fakeAuditRepo struct {
	entries []models.AuditLogEntry
	err     error
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *models.AuditLogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *entry)
	return nil
}

// alwaysRoll makes every probability roll succeed (Float64() is near zero)
// while keeping Intn and Shuffle terminating: a constant zero source never
// clears the bias-rejection threshold inside Intn and spins forever.
type alwaysRoll struct{}

func (alwaysRoll) Int63() int64 { return 1 << 40 }
func (alwaysRoll) Seed(int64)   {}
