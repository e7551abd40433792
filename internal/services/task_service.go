package services

import (
	"itacatech/internal/authz"
	"itacatech/internal/ids"
	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

// TaskService owns work-item rules: creation defaults, the two-state toggle
// and the role-based visibility filter.
type TaskService struct {
	Repo *repositories.TaskRepository
}

func NewTaskService(repo *repositories.TaskRepository) *TaskService {
	return &TaskService{Repo: repo}
}

// VisibleTo returns the tasks the identity may see: admins get everything,
// everyone else only tasks assigned to them or to the whole team.
func (s *TaskService) VisibleTo(userID string, role models.UserRole) []models.Task {
	all := s.Repo.All()
	if authz.IsAdmin(role) {
		return all
	}
	visible := make([]models.Task, 0, len(all))
	for _, t := range all {
		if t.AssignedTo == userID || t.AssignedTo == models.AssignedAll {
			visible = append(visible, t)
		}
	}
	return visible
}

func (s *TaskService) Create(task models.Task) (*models.Task, error) {
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	if !task.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !task.Priority.Valid() {
		return nil, ErrInvalidStatus
	}
	if task.AssignedTo == "" {
		task.AssignedTo = models.AssignedAll
	}
	task.ID = ids.New()
	if err := s.Repo.Insert(task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Toggle flips completed back to pending and anything else to completed —
// an in_progress task therefore completes. Toggling twice restores the
// original status for the pending/completed pair.
func (s *TaskService) Toggle(id string) (*models.Task, error) {
	return s.Repo.Update(id, func(t *models.Task) {
		if t.Status == models.TaskCompleted {
			t.Status = models.TaskPending
		} else {
			t.Status = models.TaskCompleted
		}
	})
}

// Update merges the given fields; unlike Toggle it may set any of the three
// statuses. Returns nil when the id is unknown.
func (s *TaskService) Update(id string, updates models.TaskUpdate) (*models.Task, error) {
	if updates.Status != nil && !updates.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if updates.Priority != nil && !updates.Priority.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.Repo.Update(id, func(t *models.Task) {
		if updates.Title != nil {
			t.Title = *updates.Title
		}
		if updates.Description != nil {
			t.Description = *updates.Description
		}
		if updates.AssignedTo != nil {
			t.AssignedTo = *updates.AssignedTo
		}
		if updates.Status != nil {
			t.Status = *updates.Status
		}
		if updates.Priority != nil {
			t.Priority = *updates.Priority
		}
		if updates.DueDate != nil {
			t.DueDate = *updates.DueDate
		}
	})
}

func (s *TaskService) Delete(id string) error {
	return s.Repo.Delete(id)
}
