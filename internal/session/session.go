// Package session holds the authentication state shared by every view for
// the lifetime of one running application.
package session

import "sync"

// Session is the authentication flag plus the login action. It is created
// logged out and can only move to logged in.
type Session struct {
	mu            sync.Mutex
	authenticated bool
	nextID        int
	listeners     map[int]func(authenticated bool)
}

// New returns a logged-out Session.
func New() *Session {
	return &Session{listeners: map[int]func(bool){}}
}

// Status reports whether LogIn has been called.
func (s *Session) Status() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// LogIn marks the session authenticated. Calling it again has no effect.
// Listeners are notified once, on the first call.
func (s *Session) LogIn() {
	s.mu.Lock()
	if s.authenticated {
		s.mu.Unlock()
		return
	}
	s.authenticated = true
	fns := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(true)
	}
}

// Subscribe registers fn to be called when the flag changes and returns a
// function that removes it.
func (s *Session) Subscribe(fn func(authenticated bool)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
