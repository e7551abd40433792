package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
)

func TestAppointmentRepositorySeedsEmptyStore(t *testing.T) {
	repo, err := NewAppointmentRepository(newTestStore(t))
	require.NoError(t, err)

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Empresa Alpha", all[0].ClientName)
	assert.Equal(t, "Beta Indústrias", all[1].ClientName)
	for _, apt := range all {
		assert.Equal(t, models.AppointmentScheduled, apt.Status)
	}
}

func TestAppointmentRepositoryInsertAppends(t *testing.T) {
	repo, err := NewAppointmentRepository(newTestStore(t))
	require.NoError(t, err)

	require.NoError(t, repo.Insert(models.Appointment{ID: "x", ClientName: "Gamma"}))

	all := repo.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Gamma", all[2].ClientName)
}

func TestAppointmentRepositorySurvivesReopen(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewAppointmentRepository(store)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(models.Appointment{ID: "x", ClientName: "Gamma", Date: "2024-05-01"}))

	reopened, err := NewAppointmentRepository(store)
	require.NoError(t, err)
	got, found := reopened.GetByID("x")
	require.True(t, found)
	assert.Equal(t, "2024-05-01", got.Date)
}
