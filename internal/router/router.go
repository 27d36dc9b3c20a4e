// Package router selects which of the two top-level views is visible.
package router

import "errors"

// View identifies a top-level screen.
type View int

const (
	ViewAuth View = iota
	ViewTodo
)

func (v View) String() string {
	switch v {
	case ViewTodo:
		return "todo"
	default:
		return "auth"
	}
}

// ErrUnauthenticated is returned by SelectTodos when a guard is installed
// and the session is not logged in.
var ErrUnauthenticated = errors.New("router: todo view requires login")

// Guard reports whether the todo view may be shown.
type Guard func() bool

// Option configures a Router.
type Option func(*Router)

// WithGuard makes SelectTodos consult g before switching.
func WithGuard(g Guard) Option {
	return func(r *Router) { r.guard = g }
}

// Router holds the current view selector. It starts on ViewAuth.
type Router struct {
	current View
	guard   Guard
}

// New returns a Router showing the auth view.
func New(opts ...Option) *Router {
	r := &Router{current: ViewAuth}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Current returns the selected view.
func (r *Router) Current() View { return r.current }

// SelectTodos switches to the todo view. Without a guard it always succeeds.
// changed reports whether the selector actually moved.
func (r *Router) SelectTodos() (changed bool, err error) {
	if r.guard != nil && !r.guard() {
		return false, ErrUnauthenticated
	}
	return r.set(ViewTodo), nil
}

// SelectAuth switches to the auth view.
func (r *Router) SelectAuth() (changed bool) {
	return r.set(ViewAuth)
}

func (r *Router) set(v View) bool {
	if r.current == v {
		return false
	}
	r.current = v
	return true
}
