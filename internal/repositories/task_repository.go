package repositories

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"itacatech/internal/models"
	"itacatech/internal/storage"
)

// TaskRepository keeps the task collection in memory and mirrors every
// mutation to the document store. An empty store is populated with the fixed
// demo tasks, dated to the current month.
type TaskRepository struct {
	store storage.Store

	mu    sync.Mutex
	tasks []models.Task
}

func NewTaskRepository(store storage.Store) (*TaskRepository, error) {
	r := &TaskRepository{store: store}
	raw, err := store.Get(storage.KeyTasks)
	switch err {
	case nil:
		if err := json.Unmarshal(raw, &r.tasks); err != nil {
			return nil, fmt.Errorf("decode tasks: %w", err)
		}
	case storage.ErrNotFound:
		r.tasks = seedTasks(time.Now())
		if err := r.persistLocked(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return r, nil
}

func seedTasks(now time.Time) []models.Task {
	month := now.Format("2006-01")
	return []models.Task{
		{ID: "1", Title: "Atualizar CRM com leads da semana", Description: "Revisar status", AssignedTo: "2", Status: models.TaskPending, Priority: models.PriorityHigh, DueDate: month + "-10"},
		{ID: "2", Title: "Follow-up proposta Empresa X", Description: "Enviar e-mail de cobrança", AssignedTo: "2", Status: models.TaskCompleted, Priority: models.PriorityMedium, DueDate: month + "-08"},
		{ID: "3", Title: "Criar playbook de Outbound", Description: "Definir novas cadências", AssignedTo: "1", Status: models.TaskInProgress, Priority: models.PriorityHigh, DueDate: month + "-15"},
		{ID: "4", Title: "Reunião de alinhamento", Description: "Semanal", AssignedTo: models.AssignedAll, Status: models.TaskPending, Priority: models.PriorityLow, DueDate: month + "-12"},
	}
}

// All returns a copy of the current collection, newest first.
func (r *TaskRepository) All() []models.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *TaskRepository) GetByID(id string) (*models.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			task := r.tasks[i]
			return &task, true
		}
	}
	return nil, false
}

// Insert prepends the task (newest first) and persists the collection.
func (r *TaskRepository) Insert(task models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append([]models.Task{task}, r.tasks...)
	return r.persistLocked()
}

// Update applies fn to the matching task. No-op when the id is unknown.
func (r *TaskRepository) Update(id string, fn func(*models.Task)) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			fn(&r.tasks[i])
			task := r.tasks[i]
			return &task, r.persistLocked()
		}
	}
	return nil, nil
}

// Delete removes the matching task. No-op when the id is unknown.
func (r *TaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return r.persistLocked()
		}
	}
	return nil
}

func (r *TaskRepository) persistLocked() error {
	raw, err := json.Marshal(r.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return r.store.Put(storage.KeyTasks, raw)
}
