package services

import (
	"fmt"

	"itacatech/internal/events"
	"itacatech/internal/ids"
	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

// AppointmentService manages the agenda. Creation emits an event instead of
// writing to the alert feed directly, keeping the stores decoupled.
type AppointmentService struct {
	Repo       *repositories.AppointmentRepository
	Dispatcher *events.Dispatcher
}

func NewAppointmentService(repo *repositories.AppointmentRepository, dispatcher *events.Dispatcher) *AppointmentService {
	return &AppointmentService{Repo: repo, Dispatcher: dispatcher}
}

func (s *AppointmentService) List() []models.Appointment {
	return s.Repo.All()
}

// Create schedules the meeting and announces it to subscribers (alert feed,
// optional confirmation mail and telegram forwarding).
func (s *AppointmentService) Create(apt models.Appointment) (*models.Appointment, error) {
	apt.ID = ids.New()
	apt.Status = models.AppointmentScheduled
	if err := s.Repo.Insert(apt); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(events.Event{Type: events.AppointmentScheduled, Payload: apt})
	return &apt, nil
}

// ScheduledMessage is the alert text announcing a new meeting.
func ScheduledMessage(apt models.Appointment) string {
	return fmt.Sprintf("Nova reunião agendada: %s em %s às %s.", apt.ClientName, apt.Date, apt.Time)
}

// Update merges the given fields. Returns nil when the id is unknown.
func (s *AppointmentService) Update(id string, updates models.AppointmentUpdate) (*models.Appointment, error) {
	if updates.Status != nil && !updates.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.Repo.Update(id, func(a *models.Appointment) {
		if updates.ClientName != nil {
			a.ClientName = *updates.ClientName
		}
		if updates.ClientEmail != nil {
			a.ClientEmail = *updates.ClientEmail
		}
		if updates.Date != nil {
			a.Date = *updates.Date
		}
		if updates.Time != nil {
			a.Time = *updates.Time
		}
		if updates.Status != nil {
			a.Status = *updates.Status
		}
		if updates.Notes != nil {
			a.Notes = *updates.Notes
		}
	})
}

func (s *AppointmentService) Delete(id string) error {
	return s.Repo.Delete(id)
}
