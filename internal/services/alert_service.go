package services

import (
	"itacatech/internal/events"
	"itacatech/internal/ids"
	"itacatech/internal/models"
	"itacatech/internal/repositories"
)

// AlertService feeds the ephemeral notification list and re-announces every
// new alert so outbound notifiers (telegram) can pick it up.
type AlertService struct {
	Repo       *repositories.AlertRepository
	Dispatcher *events.Dispatcher
}

func NewAlertService(repo *repositories.AlertRepository, dispatcher *events.Dispatcher) *AlertService {
	return &AlertService{Repo: repo, Dispatcher: dispatcher}
}

func (s *AlertService) List() []models.Alert {
	return s.Repo.All()
}

// Add prepends a freshly stamped alert to the feed.
func (s *AlertService) Add(alertType models.AlertType, message string) (*models.Alert, error) {
	if !alertType.Valid() {
		return nil, ErrInvalidStatus
	}
	alert := models.Alert{
		ID:      ids.New(),
		Type:    alertType,
		Message: message,
		Time:    "Agora mesmo",
	}
	s.Repo.Insert(alert)
	s.Dispatcher.Dispatch(events.Event{Type: events.AlertRaised, Payload: alert})
	return &alert, nil
}

func (s *AlertService) Remove(id string) {
	s.Repo.Delete(id)
}
