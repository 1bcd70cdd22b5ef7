package runtime

import "github.com/vcrobe/topics-ui/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// ComponentFactory builds a fresh component for a matched route.
// params holds the values captured by {name} segments of the route pattern.
type ComponentFactory func(params map[string]string) Component
