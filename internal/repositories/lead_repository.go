package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"itacatech/internal/models"
	"itacatech/internal/storage"
)

// LeadRepository keeps the lead collection in memory and mirrors every
// mutation to the document store. The lead collection starts empty; there is
// no seed data for the pipeline.
type LeadRepository struct {
	store storage.Store

	mu    sync.RWMutex
	leads []models.Lead
}

func NewLeadRepository(store storage.Store) (*LeadRepository, error) {
	r := &LeadRepository{store: store}
	raw, err := store.Get(storage.KeyLeads)
	if err == storage.ErrNotFound {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}
	if err := json.Unmarshal(raw, &r.leads); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	return r, nil
}

// All returns a copy of the current collection, newest first.
func (r *LeadRepository) All() []models.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Lead, len(r.leads))
	copy(out, r.leads)
	return out
}

func (r *LeadRepository) GetByID(id string) (*models.Lead, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			lead := r.leads[i]
			return &lead, true
		}
	}
	return nil, false
}

// Insert prepends the lead (newest first) and persists the collection.
func (r *LeadRepository) Insert(lead models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append([]models.Lead{lead}, r.leads...)
	return r.persistLocked()
}

// Update applies fn to the matching lead. No-op when the id is unknown.
func (r *LeadRepository) Update(id string, fn func(*models.Lead)) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			fn(&r.leads[i])
			lead := r.leads[i]
			return &lead, r.persistLocked()
		}
	}
	return nil, nil
}

// Delete removes the matching lead. No-op when the id is unknown.
func (r *LeadRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return r.persistLocked()
		}
	}
	return nil
}

func (r *LeadRepository) persistLocked() error {
	raw, err := json.Marshal(r.leads)
	if err != nil {
		return fmt.Errorf("encode leads: %w", err)
	}
	return r.store.Put(storage.KeyLeads, raw)
}
