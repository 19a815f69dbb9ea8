// Package lifecycle tracks the host application's lifecycle state and
// relays transitions to interested parties.
//
// The host embedder (or test harness) feeds state changes into a
// [Service] via SetState; everything else observes them through
// AddHandler or, for countdown subscribers, through [BindRegistry].
package lifecycle

import (
	"sync"

	"github.com/go-drift/appbase/pkg/countdown"
)

// State represents the current app lifecycle state.
type State string

const (
	// StateResumed indicates the app is visible and responding to user input.
	StateResumed State = "resumed"

	// StateInactive indicates the app is transitioning (e.g., receiving a
	// phone call or showing a system dialog).
	StateInactive State = "inactive"

	// StatePaused indicates the app is not visible but still running.
	StatePaused State = "paused"

	// StateDetached indicates the app is still hosted but detached from
	// any view and about to be torn down.
	StateDetached State = "detached"
)

// Handler is called when the lifecycle state changes.
type Handler func(state State)

// Service manages app lifecycle state and its observers.
// The zero value is not usable; construct with NewService.
type Service struct {
	mu       sync.RWMutex
	state    State
	handlers []Handler
}

// NewService creates a lifecycle service starting in [StateResumed].
func NewService() *Service {
	return &Service{
		state:    StateResumed,
		handlers: make([]Handler, 0),
	}
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsResumed returns true if the app is in the resumed state.
func (s *Service) IsResumed() bool {
	return s.State() == StateResumed
}

// IsPaused returns true if the app is paused.
func (s *Service) IsPaused() bool {
	return s.State() == StatePaused
}

// AddHandler registers a handler to be called on lifecycle changes.
// Returns a function that can be called to remove the handler.
func (s *Service) AddHandler(handler Handler) func() {
	s.mu.Lock()
	s.handlers = append(s.handlers, handler)
	index := len(s.handlers) - 1
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		if index < len(s.handlers) {
			s.handlers = append(s.handlers[:index], s.handlers[index+1:]...)
		}
		s.mu.Unlock()
	}
}

// SetState records a new lifecycle state and notifies handlers.
// Setting the current state again is a no-op. Called by the host
// embedder when the platform reports a transition.
func (s *Service) SetState(newState State) {
	s.mu.Lock()
	if s.state == newState {
		s.mu.Unlock()
		return
	}
	s.state = newState
	handlers := make([]Handler, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, h := range handlers {
		h(newState)
	}
}

// BindRegistry relays lifecycle transitions to a countdown registry's
// subscribers: pausing broadcasts OnPause, resuming broadcasts OnResume,
// and detaching broadcasts OnDestroy. The countdown tick loop itself
// never invokes these hooks.
//
// Returns an unbind function.
func BindRegistry(s *Service, reg *countdown.Registry) func() {
	return s.AddHandler(func(state State) {
		switch state {
		case StatePaused:
			reg.PauseAll()
		case StateResumed:
			reg.ResumeAll()
		case StateDetached:
			reg.DestroyAll()
		}
	})
}
