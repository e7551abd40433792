package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
	"itacatech/internal/services"
)

func TestGenerateWeeklyReport(t *testing.T) {
	gen := NewReportGenerator()

	data, err := gen.GenerateWeeklyReport(services.WeeklyReport{
		TasksThisWeek:         4,
		CompletedTasks:        1,
		CompletionRate:        25,
		HighPriorityCompleted: 0,
		NewAppointments:       1,
		Appointments: []models.Appointment{
			{ClientName: "Acme Corp", Date: "2024-03-10", Time: "14:00", Status: models.AppointmentScheduled},
		},
		GeneratedAt: "2024-03-10",
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateWeeklyReportEmptyWeek(t *testing.T) {
	gen := NewReportGenerator()

	data, err := gen.GenerateWeeklyReport(services.WeeklyReport{GeneratedAt: "2024-03-10"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
