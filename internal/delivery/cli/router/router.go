package router

import "errors"

// ErrExit tells the menu loop to stop dispatching and shut down.
var ErrExit = errors.New("exit requested")

type HandlerFunc func() error

type MenuRouter struct {
	handlers map[string]HandlerFunc
}

func New() *MenuRouter {
	return &MenuRouter{handlers: make(map[string]HandlerFunc)}
}

func (r *MenuRouter) Register(choice string, h HandlerFunc) {
	r.handlers[choice] = h
}

// Dispatch runs the handler bound to choice. The bool reports whether a
// handler was registered for it.
func (r *MenuRouter) Dispatch(choice string) (bool, error) {
	if h, ok := r.handlers[choice]; ok {
		return true, h()
	}
	return false, nil
}
