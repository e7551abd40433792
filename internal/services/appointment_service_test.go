package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/events"
	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

// newAgenda wires an appointment service to an alert feed the way the app
// does: scheduling announces itself on the feed via the dispatcher.
func newAgenda(t *testing.T) (*AppointmentService, *AlertService) {
	t.Helper()
	dispatcher := events.NewDispatcher()

	aptRepo, err := repositories.NewAppointmentRepository(newTestStore(t))
	require.NoError(t, err)
	aptSvc := NewAppointmentService(aptRepo, dispatcher)
	alertSvc := NewAlertService(repositories.NewAlertRepository(), dispatcher)

	dispatcher.Subscribe(events.AppointmentScheduled, func(ev events.Event) {
		apt, ok := ev.Payload.(models.Appointment)
		if !ok {
			return
		}
		_, _ = alertSvc.Add(models.AlertInfo, ScheduledMessage(apt))
	})
	return aptSvc, alertSvc
}

func TestAppointmentCreateSchedulesAndAnnounces(t *testing.T) {
	aptSvc, alertSvc := newAgenda(t)

	apt, err := aptSvc.Create(models.Appointment{
		ClientName:  "Acme Corp",
		ClientEmail: "ops@acme.com",
		Date:        "2024-03-10",
		Time:        "14:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, apt.ID)
	assert.Equal(t, models.AppointmentScheduled, apt.Status)

	all := aptSvc.List()
	require.Len(t, all, 3)
	assert.Equal(t, "Acme Corp", all[2].ClientName)

	feed := alertSvc.List()
	require.Len(t, feed, 4)
	assert.Equal(t, models.AlertInfo, feed[0].Type)
	assert.Equal(t, "Nova reunião agendada: Acme Corp em 2024-03-10 às 14:00.", feed[0].Message)
	assert.Equal(t, "Agora mesmo", feed[0].Time)
}

func TestAppointmentUpdate(t *testing.T) {
	aptSvc, _ := newAgenda(t)

	status := models.AppointmentCompleted
	apt, err := aptSvc.Update("1", models.AppointmentUpdate{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, apt)
	assert.Equal(t, models.AppointmentCompleted, apt.Status)

	bad := models.AppointmentStatus("postponed")
	_, err = aptSvc.Update("1", models.AppointmentUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	missing, err := aptSvc.Update("nope", models.AppointmentUpdate{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAppointmentDelete(t *testing.T) {
	aptSvc, _ := newAgenda(t)

	require.NoError(t, aptSvc.Delete("1"))
	assert.Len(t, aptSvc.List(), 1)
}

func TestAlertAddValidatesType(t *testing.T) {
	_, alertSvc := newAgenda(t)

	_, err := alertSvc.Add("shout", "mensagem")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
