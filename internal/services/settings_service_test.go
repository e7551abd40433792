package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/repositories"
)

func newSettingsService(t *testing.T, defaultKey string) *SettingsService {
	t.Helper()
	repo, err := repositories.NewSettingsRepository(newTestStore(t))
	require.NoError(t, err)
	return NewSettingsService(repo, defaultKey)
}

func TestResolveAPIKeyPrecedence(t *testing.T) {
	svc := newSettingsService(t, "env-key")

	// nothing saved: the environment default applies
	assert.Equal(t, "env-key", svc.ResolveAPIKey())

	// a saved key wins over the default
	require.NoError(t, svc.SetAPIKey("user-key"))
	assert.Equal(t, "user-key", svc.ResolveAPIKey())

	// clearing the saved key falls back again
	require.NoError(t, svc.SetAPIKey(""))
	assert.Equal(t, "env-key", svc.ResolveAPIKey())
}

func TestResolveAPIKeyEmptyEverywhere(t *testing.T) {
	svc := newSettingsService(t, "")
	assert.Empty(t, svc.ResolveAPIKey())
}

func TestSetRiskProfileBounds(t *testing.T) {
	svc := newSettingsService(t, "")

	require.NoError(t, svc.SetRiskProfile(0))
	require.NoError(t, svc.SetRiskProfile(100))
	assert.Error(t, svc.SetRiskProfile(-1))
	assert.Error(t, svc.SetRiskProfile(101))

	assert.Equal(t, 100, svc.Get().RiskProfile)
}
