package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	repo, err := repositories.NewTaskRepository(newTestStore(t))
	require.NoError(t, err)
	return NewTaskService(repo)
}

func TestTaskVisibility(t *testing.T) {
	svc := newTaskService(t)

	// seeds: two for "2", one for "1", one for the whole team
	admin := svc.VisibleTo("1", models.RoleAdmin)
	assert.Len(t, admin, 4)

	sdr := svc.VisibleTo("2", models.RoleSDR)
	require.Len(t, sdr, 3)
	for _, task := range sdr {
		assert.True(t, task.AssignedTo == "2" || task.AssignedTo == models.AssignedAll)
	}
}

func TestTaskCreateDefaults(t *testing.T) {
	svc := newTaskService(t)

	task, err := svc.Create(models.Task{Title: "Ligar para lead", DueDate: "2024-04-01"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.AssignedAll, task.AssignedTo)
}

func TestTaskToggle(t *testing.T) {
	svc := newTaskService(t)

	// pending toggles to completed and back
	task, err := svc.Toggle("1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, models.TaskCompleted, task.Status)

	task, err = svc.Toggle("1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)

	// in_progress completes, then reopens as pending
	task, err = svc.Toggle("3")
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.Status)

	task, err = svc.Toggle("3")
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)
}

func TestTaskUpdateValidatesEnums(t *testing.T) {
	svc := newTaskService(t)

	bad := models.TaskStatus("frozen")
	_, err := svc.Update("1", models.TaskUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	status := models.TaskInProgress
	task, err := svc.Update("1", models.TaskUpdate{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, models.TaskInProgress, task.Status)

	missing, err := svc.Update("nope", models.TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
