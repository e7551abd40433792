package events

import "sync"

// Event types emitted by the services.
const (
	AppointmentScheduled = "appointment.scheduled"
	AlertRaised          = "alert.raised"
)

// Event is a domain occurrence handed to subscribers after the originating
// mutation has been persisted.
type Event struct {
	Type    string
	Payload any
}

// Handler consumes one event. Handlers must not block; slow side effects
// (mail, telegram) do their own best-effort error handling.
type Handler func(Event)

// Dispatcher is a minimal in-process fan-out keeping stores decoupled from
// the side effects their mutations trigger.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[string][]Handler{}}
}

// Subscribe registers h for every event of the given type.
func (d *Dispatcher) Subscribe(eventType string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], h)
}

// Dispatch delivers ev synchronously to all subscribers, in order.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	handlers := d.handlers[ev.Type]
	d.mu.RUnlock()
	for _, h := range handlers {
		h(ev)
	}
}
