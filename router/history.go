package router

// Mode selects how routes are reflected in the browser URL.
type Mode int

const (
	// PathMode uses clean URLs (/topics) and needs a server that falls back
	// to index.html for unknown paths.
	PathMode Mode = iota
	// HashMode keeps the route in the fragment (#/topics) and works with any
	// static file server.
	HashMode
)

// History is the browser-history collaborator of the router.
type History interface {
	// Path returns the route path of the current entry.
	Path() string
	// Push adds a new entry for path without triggering listeners.
	Push(path string)
	// Listen registers fn for entry changes caused by the user (back/forward).
	Listen(fn func(path string)) (stop func())
}
