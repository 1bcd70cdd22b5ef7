package runtime

import "errors"

// ErrNoNavigator is returned when navigation is requested but no
// navigation manager has been wired into the renderer or component.
var ErrNoNavigator = errors.New("no navigator configured")

// Navigator is the capability to request client-side navigation.
// It is the only thing a component needs from the router.
type Navigator interface {
	Navigate(path string) error
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(path string) error

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path string) error {
	return f(path)
}

// NavigationManager is a Navigator that owns the route table and the
// browser history. Start reads the initial location and reports every
// route change through onChange.
type NavigationManager interface {
	Navigator
	Start(onChange func(chain []Component, key string)) error
}
