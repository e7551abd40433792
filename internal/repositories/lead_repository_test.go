package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
	"itacatech/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLeadRepositoryStartsEmpty(t *testing.T) {
	repo, err := NewLeadRepository(newTestStore(t))
	require.NoError(t, err)
	assert.Empty(t, repo.All())
}

func TestLeadRepositoryInsertPrepends(t *testing.T) {
	repo, err := NewLeadRepository(newTestStore(t))
	require.NoError(t, err)

	require.NoError(t, repo.Insert(models.Lead{ID: "a", Company: "Alpha"}))
	require.NoError(t, repo.Insert(models.Lead{ID: "b", Company: "Beta"}))

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestLeadRepositorySurvivesReopen(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewLeadRepository(store)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(models.Lead{ID: "a", Company: "Alpha", Status: models.LeadNew}))

	reopened, err := NewLeadRepository(store)
	require.NoError(t, err)
	all := reopened.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Alpha", all[0].Company)
	assert.Equal(t, models.LeadNew, all[0].Status)
}

func TestLeadRepositoryUpdateUnknownID(t *testing.T) {
	repo, err := NewLeadRepository(newTestStore(t))
	require.NoError(t, err)

	lead, err := repo.Update("nope", func(l *models.Lead) { l.Status = models.LeadWon })
	require.NoError(t, err)
	assert.Nil(t, lead)
}

func TestLeadRepositoryDelete(t *testing.T) {
	repo, err := NewLeadRepository(newTestStore(t))
	require.NoError(t, err)

	require.NoError(t, repo.Insert(models.Lead{ID: "a"}))
	require.NoError(t, repo.Delete("a"))
	assert.Empty(t, repo.All())

	// unknown id is a no-op
	require.NoError(t, repo.Delete("a"))
}
