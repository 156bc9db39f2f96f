package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flag-quiz-bot/internal/storage"
)

func TestPlayerService_EnsurePlayer(t *testing.T) {
	ctx := context.Background()
	registry := storage.NewPlayerRegistry()
	svc := NewPlayerService(registry)

	require.NoError(t, svc.EnsurePlayer(ctx, 10, 20, "alice", "en"))
	require.NoError(t, svc.EnsurePlayer(ctx, 10, 20, "alice", "en"))

	exists, err := registry.Exists(ctx, 10)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCountryService(t *testing.T) {
	svc := NewCountryService(newTestTable(t, "DE", "FR", "IT", "ES"), "assets/flags")

	name, err := svc.Name("DE")
	require.NoError(t, err)
	assert.Equal(t, "Country DE", name)
	assert.Equal(t, "assets/flags/de.png", svc.FlagPath("DE"))
}
