package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/game"
	"github.com/mindevis/stitch-cafe/models"
	"github.com/mindevis/stitch-cafe/userctx"
)

func seedPlayers(users *fakeUserRepo) {
	users.users[1] = &models.User{ID: 1, FirstName: "Аня", TotalOrders: 40, Level: 4}
	users.users[2] = &models.User{ID: 2, FirstName: "Борис", TotalOrders: 25, Level: 2,
		Flags: models.SpecialFlags{Student: true}}
	users.users[3] = &models.User{ID: 3, FirstName: "Вера", TotalOrders: 25, Level: 1}
}

func TestLeaderboard(t *testing.T) {
	users := newFakeUserRepo()
	seedPlayers(users)
	service := NewStatsService(users, &fakeAuditRepo{}, zap.NewNop())

	entries, err := service.Leaderboard(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Аня", entries[0].FirstName)
	assert.Equal(t, game.TitleFor(4), entries[0].LevelTitle)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Борис", entries[1].FirstName)
}

func TestLeaderboardInvalidLimit(t *testing.T) {
	service := NewStatsService(newFakeUserRepo(), &fakeAuditRepo{}, zap.NewNop())

	_, err := service.Leaderboard(context.Background(), 0)
	assert.Error(t, err)
}

func TestFullStats(t *testing.T) {
	users := newFakeUserRepo()
	seedPlayers(users)
	service := NewStatsService(users, &fakeAuditRepo{}, zap.NewNop())

	stats, err := service.FullStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, "Аня", stats[0].FirstName)
	assert.True(t, stats[1].Flags.Student)
	assert.False(t, stats[2].Flags.Student)
}

func TestResetWipesAndAudits(t *testing.T) {
	users := newFakeUserRepo()
	seedPlayers(users)
	audit := &fakeAuditRepo{}
	service := NewStatsService(users, audit, zap.NewNop())

	ctx := userctx.WithActor(context.Background(), 111, "Админ")
	require.NoError(t, service.Reset(ctx))

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "reset", audit.entries[0].Action)
	assert.Equal(t, "111 (Админ)", audit.entries[0].Actor)
	assert.Contains(t, audit.entries[0].Detail, "3")
}

func TestResetSurvivesAuditFailure(t *testing.T) {
	users := newFakeUserRepo()
	seedPlayers(users)
	audit := &fakeAuditRepo{err: errors.New("disk full")}
	service := NewStatsService(users, audit, zap.NewNop())

	// A broken audit log must not block the wipe itself
	require.NoError(t, service.Reset(context.Background()))

	count, err := users.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStatsRepositoryErrors(t *testing.T) {
	users := newFakeUserRepo()
	users.err = errors.New("database gone")
	service := NewStatsService(users, &fakeAuditRepo{}, zap.NewNop())

	_, err := service.FullStats(context.Background())
	assert.Error(t, err)

	_, err = service.Leaderboard(context.Background(), 10)
	assert.Error(t, err)

	assert.Error(t, service.Reset(context.Background()))
}
