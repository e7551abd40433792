package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"itacatech/internal/models"
	"itacatech/internal/storage"
)

// AppointmentRepository keeps the agenda in memory and mirrors every mutation
// to the document store. Unlike leads and tasks, new appointments go to the
// end of the collection (oldest first).
type AppointmentRepository struct {
	store storage.Store

	mu           sync.Mutex
	appointments []models.Appointment
}

func NewAppointmentRepository(store storage.Store) (*AppointmentRepository, error) {
	r := &AppointmentRepository{store: store}
	raw, err := store.Get(storage.KeyAppointments)
	switch err {
	case nil:
		if err := json.Unmarshal(raw, &r.appointments); err != nil {
			return nil, fmt.Errorf("decode appointments: %w", err)
		}
	case storage.ErrNotFound:
		r.appointments = seedAppointments()
		if err := r.persistLocked(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	return r, nil
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "1", ClientName: "Empresa Alpha", ClientEmail: "contato@alpha.com", Date: "2023-11-20", Time: "14:00", Status: models.AppointmentScheduled},
		{ID: "2", ClientName: "Beta Indústrias", ClientEmail: "comercial@beta.ind", Date: "2023-11-21", Time: "10:00", Status: models.AppointmentScheduled},
	}
}

// All returns a copy of the current collection, oldest first.
func (r *AppointmentRepository) All() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}

func (r *AppointmentRepository) GetByID(id string) (*models.Appointment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			apt := r.appointments[i]
			return &apt, true
		}
	}
	return nil, false
}

// Insert appends the appointment and persists the collection.
func (r *AppointmentRepository) Insert(apt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, apt)
	return r.persistLocked()
}

// Update applies fn to the matching appointment. No-op when the id is unknown.
func (r *AppointmentRepository) Update(id string, fn func(*models.Appointment)) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			fn(&r.appointments[i])
			apt := r.appointments[i]
			return &apt, r.persistLocked()
		}
	}
	return nil, nil
}

// Delete removes the matching appointment. No-op when the id is unknown.
func (r *AppointmentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return r.persistLocked()
		}
	}
	return nil
}

func (r *AppointmentRepository) persistLocked() error {
	raw, err := json.Marshal(r.appointments)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	return r.store.Put(storage.KeyAppointments, raw)
}
