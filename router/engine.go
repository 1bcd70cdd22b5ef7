package router

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vcrobe/topics-ui/console"
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/signals"
)

var (
	// ErrNoRoute is returned when no route matches and no not-found route is set.
	ErrNoRoute = errors.New("no route for path")
	// ErrNotStarted is returned by Navigate before Start has been called.
	ErrNotStarted = errors.New("router not started")
)

var _ runtime.NavigationManager = (*Engine)(nil)

// Engine manages routing with the app shell pattern and pivot-based layout reuse.
// It preserves layout instances across navigations when the layout chain matches.
type Engine struct {
	mu            sync.Mutex
	history       History
	currentPath   string
	activeChain   []ComponentMetadata
	liveInstances []runtime.Component // Parallel to activeChain; instances are reused
	pivotPoint    int                 // First index where chain differs between routes
	routes        []*Route
	notFound      *Route
	renderer      runtime.Renderer
	onRouteChange func(chain []runtime.Component, key string)
	stopListening func()
	path          *signals.Signal[string]
}

// NewEngine creates a router engine on top of history.
func NewEngine(history History) *Engine {
	return &Engine{
		history:       history,
		liveInstances: make([]runtime.Component, 0, 4),
		path:          signals.NewSignal(""),
	}
}

// SetRenderer sets the renderer injected into every component the engine creates.
func (e *Engine) SetRenderer(renderer runtime.Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer = renderer
}

// RegisterRoutes adds routes to the engine.
// Exact paths win over patterns; patterns are tried in registration order.
func (e *Engine) RegisterRoutes(routes []Route) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range routes {
		e.routes = append(e.routes, &routes[i])
	}
}

// HandleNotFound sets the chain shown when no route matches.
func (e *Engine) HandleNotFound(chain []ComponentMetadata) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notFound = &Route{Chain: chain}
}

// Navigate changes the current route, records it in history and reports the
// new component chain to the route change callback.
func (e *Engine) Navigate(path string) error {
	return e.navigate(path, true)
}

func (e *Engine) navigate(path string, push bool) error {
	e.mu.Lock()

	if e.onRouteChange == nil {
		e.mu.Unlock()
		return fmt.Errorf("navigate to %q: %w", path, ErrNotStarted)
	}
	if path == "" {
		console.Warn("[Engine.Navigate] The path is empty string")
		path = "/"
	}

	console.Log("[Engine.Navigate] from", e.currentPath, "to", path)

	targetRoute, params := e.findMatchingRoute(path)
	if targetRoute == nil {
		e.mu.Unlock()
		console.Error("[Engine.Navigate] No route found for path:", path)
		return fmt.Errorf("%w: %s", ErrNoRoute, path)
	}

	if push {
		e.history.Push(path)
	}

	pivot := e.calculatePivot(targetRoute.Chain)
	console.Log("[Engine.Navigate] Pivot point:", pivot, "Chain length:", len(targetRoute.Chain))

	// Instances past the pivot leave the tree; drop their slot links.
	for i := pivot; i < len(e.liveInstances); i++ {
		if slotTracking, ok := e.liveInstances[i].(interface{ SetSlotParent(runtime.Component) }); ok {
			slotTracking.SetSlotParent(nil)
		}
	}

	newInstances := make([]runtime.Component, len(targetRoute.Chain))
	copy(newInstances[:pivot], e.liveInstances[:pivot])

	for i := pivot; i < len(targetRoute.Chain); i++ {
		instance := targetRoute.Chain[i].Factory(params)
		if e.renderer != nil {
			instance.SetRenderer(e.renderer)
		}
		if i > 0 {
			if slotTracking, ok := instance.(interface{ SetSlotParent(runtime.Component) }); ok {
				slotTracking.SetSlotParent(newInstances[i-1])
			}
		}
		newInstances[i] = instance
	}

	e.currentPath = path
	e.activeChain = targetRoute.Chain
	e.liveInstances = newInstances
	e.pivotPoint = pivot
	onChange := e.onRouteChange
	e.mu.Unlock()

	onChange(newInstances, fmt.Sprintf("%s:%d", path, pivot))
	e.path.Set(path)
	return nil
}

// calculatePivot finds the first index where current and target chains differ by TypeID.
func (e *Engine) calculatePivot(targetChain []ComponentMetadata) int {
	minLen := min(len(e.activeChain), len(targetChain))
	for i := 0; i < minLen; i++ {
		if e.activeChain[i].TypeID != targetChain[i].TypeID {
			return i
		}
	}
	return minLen
}

// findMatchingRoute returns the route for path along with its captured params,
// falling back to the not-found route.
func (e *Engine) findMatchingRoute(path string) (*Route, map[string]string) {
	target := normalize(path)
	for _, route := range e.routes {
		if normalize(route.Path) == target {
			return route, map[string]string{}
		}
	}
	for _, route := range e.routes {
		if params, ok := match(route.Path, path); ok {
			return route, params
		}
	}
	if e.notFound != nil {
		return e.notFound, map[string]string{"path": path}
	}
	return nil, nil
}

// CurrentPath returns the current route path.
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// CurrentPivotPoint returns the pivot point from the last navigation.
func (e *Engine) CurrentPivotPoint() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pivotPoint
}

// PathSignal publishes the current path after every navigation.
func (e *Engine) PathSignal() *signals.Signal[string] {
	return e.path
}

// Start subscribes to history changes and navigates to the initial path.
// This implements the NavigationManager interface.
func (e *Engine) Start(onChange func(chain []runtime.Component, key string)) error {
	if onChange == nil {
		return errors.New("router: Start requires a route change callback")
	}

	e.mu.Lock()
	e.onRouteChange = onChange
	if e.stopListening == nil {
		e.stopListening = e.history.Listen(func(path string) {
			if err := e.navigate(path, false); err != nil {
				console.Error("[Engine] history navigation failed:", err.Error())
			}
		})
	}
	e.mu.Unlock()

	initialPath := e.history.Path()
	console.Log("[Engine.Start] Initial path:", initialPath)
	return e.navigate(initialPath, false)
}

// Stop releases the history listener. Navigate fails with ErrNotStarted afterwards.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopListening != nil {
		e.stopListening()
		e.stopListening = nil
	}
	e.onRouteChange = nil
}
