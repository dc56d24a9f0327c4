package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-app/internal/repository/memory"
)

func TestBootstrap_CreatesAdminOnce(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	require.NoError(t, Bootstrap(ctx, repos, "admin", "first-pass1", zap.NewNop()))
	// a second run must not need or change the password
	require.NoError(t, Bootstrap(ctx, repos, "admin", "", zap.NewNop()))

	all, err := repos.User.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDefault)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(all[0].Password), []byte("first-pass1")))

	cfg, err := repos.Site.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, cfg.HomeLayout, 5)
}

func TestBootstrap_RequiresPasswordOnFirstRun(t *testing.T) {
	err := Bootstrap(context.Background(), memory.NewRepositories(), "admin", "", zap.NewNop())
	assert.Error(t, err)
}
