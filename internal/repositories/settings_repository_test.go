package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
	"itacatech/internal/storage"
)

func TestSettingsRepositoryDefaults(t *testing.T) {
	repo, err := NewSettingsRepository(newTestStore(t))
	require.NoError(t, err)

	settings := repo.Get()
	assert.Empty(t, settings.APIKey)
	assert.Equal(t, models.DefaultRiskProfile, settings.RiskProfile)
	assert.Equal(t, models.DefaultSalesGoals(), settings.SalesGoals)
}

func TestSettingsRepositoryRiskProfileStoredAsDecimal(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewSettingsRepository(store)
	require.NoError(t, err)
	require.NoError(t, repo.SetRiskProfile(75))

	raw, err := store.Get(storage.KeyRiskProfile)
	require.NoError(t, err)
	assert.Equal(t, "75", string(raw))
}

func TestSettingsRepositoryGroupsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewSettingsRepository(store)
	require.NoError(t, err)
	require.NoError(t, repo.SetAPIKey("AIza-test"))

	// only the API key document exists; the others keep their defaults
	_, err = store.Get(storage.KeyRiskProfile)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.Get(storage.KeySalesGoals)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	reopened, err := NewSettingsRepository(store)
	require.NoError(t, err)
	settings := reopened.Get()
	assert.Equal(t, "AIza-test", settings.APIKey)
	assert.Equal(t, models.DefaultRiskProfile, settings.RiskProfile)
}

func TestSettingsRepositorySalesGoalsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewSettingsRepository(store)
	require.NoError(t, err)
	goals := models.SalesGoals{MonthlyLeads: 200, ConversionRate: 20, RevenueTarget: 80000}
	require.NoError(t, repo.SetSalesGoals(goals))

	reopened, err := NewSettingsRepository(store)
	require.NoError(t, err)
	assert.Equal(t, goals, reopened.Get().SalesGoals)
}
