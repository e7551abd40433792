package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
	"itacatech/internal/repositories"
	"itacatech/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newLeadService(t *testing.T) *LeadService {
	t.Helper()
	repo, err := repositories.NewLeadRepository(newTestStore(t))
	require.NoError(t, err)
	return NewLeadService(repo)
}

func TestLeadCreateDefaults(t *testing.T) {
	svc := newLeadService(t)

	lead, err := svc.Create(models.Lead{Name: "Ana", Company: "Acme", Email: "ana@acme.com", Phone: "11 99999-0001"})
	require.NoError(t, err)
	assert.Equal(t, models.LeadNew, lead.Status)
	assert.Equal(t, "Manual", lead.Source)
	assert.NotEmpty(t, lead.ID)
	assert.NotEmpty(t, lead.CreatedAt)
}

func TestLeadCreateRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newLeadService(t)

	_, err := svc.Create(models.Lead{Name: "Ana", Company: "Acme", Email: "A@X.com", Phone: "11 1111-1111"})
	require.NoError(t, err)

	_, err = svc.Create(models.Lead{Name: "Bia", Company: "Beta", Email: "a@x.com", Phone: "22 2222-2222"})
	assert.ErrorIs(t, err, ErrDuplicateLead)
}

func TestLeadCreateRejectsDuplicatePhoneDigits(t *testing.T) {
	svc := newLeadService(t)

	_, err := svc.Create(models.Lead{Name: "Ana", Company: "Acme", Email: "a@x.com", Phone: "(11) 99999-0001"})
	require.NoError(t, err)

	_, err = svc.Create(models.Lead{Name: "Bia", Company: "Beta", Email: "b@y.com", Phone: "11999990001"})
	assert.ErrorIs(t, err, ErrDuplicateLead)
}

func TestLeadCreateRejectsInvalidStatus(t *testing.T) {
	svc := newLeadService(t)

	_, err := svc.Create(models.Lead{Name: "Ana", Company: "Acme", Email: "a@x.com", Phone: "1", Status: "frozen"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestLeadUpdateStatus(t *testing.T) {
	svc := newLeadService(t)

	created, err := svc.Create(models.Lead{Name: "Ana", Company: "Acme", Email: "a@x.com", Phone: "1"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(created.ID, models.LeadWon)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.LeadWon, updated.Status)

	_, err = svc.UpdateStatus(created.ID, "frozen")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	missing, err := svc.UpdateStatus("nope", models.LeadLost)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
