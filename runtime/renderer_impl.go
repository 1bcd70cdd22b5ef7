package runtime

import (
	"fmt"

	"github.com/vcrobe/topics-ui/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// Surface is where a rendered tree ends up. In the browser it is the DOM
// element selected by the mount ID; tests can supply an in-memory one.
type Surface interface {
	Mount(n *vdom.VNode)
	Patch(prev, next *vdom.VNode)
}

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool   // Track which components have been initialized
	activeKeys       map[string]bool   // Track which components are active in the current render
	currentComponent Component         // The currently active root component
	currentKey       string            // Key of the root component, changes force a fresh mount
	navManager       NavigationManager // Optional: router for client-side navigation
	surface          Surface
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRendererWithSurface creates a renderer that draws onto surface.
// If navManager is nil, the renderer works without routing and Navigate
// returns ErrNoNavigator.
func NewRendererWithSurface(navManager NavigationManager, surface Surface) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		navManager:  navManager,
		surface:     surface,
	}
}

// SetCurrentComponent sets the component to be rendered.
// Changing the key resets root lifecycle tracking and remounts the surface.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if key != r.currentKey {
		delete(r.initialized, rootKey)
		r.prevVDOM = nil
	}
	r.currentComponent = comp
	r.currentKey = key
}

// SetNavigationManager attaches the router after construction.
func (r *RendererImpl) SetNavigationManager(nav NavigationManager) {
	r.navManager = nav
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)
	if !r.initialized[rootKey] {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}
	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)

	if r.surface != nil {
		if r.prevVDOM == nil {
			r.surface.Mount(newVDOM)
		} else {
			r.surface.Patch(r.prevVDOM, newVDOM)
		}
	}
	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// CurrentVDOM returns the tree produced by the last render.
func (r *RendererImpl) CurrentVDOM() *vdom.VNode {
	return r.prevVDOM
}

// RenderChild renders a child component, creating the instance on first
// sight and reusing it (with fresh props) afterwards.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else if updater, ok := instance.(PropUpdater); ok && instance != childWithProps {
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// ReRender re-runs the render cycle from the root.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Navigate delegates to the NavigationManager (router).
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("navigate to %q: %w", path, ErrNoNavigator)
	}
	return r.navManager.Navigate(path)
}
