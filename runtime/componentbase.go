package runtime

import (
	"fmt"

	"github.com/vcrobe/topics-ui/console"
)

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method, which triggers a UI re-render.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	renderer   Renderer
	slotParent Component // Parent layout if this component is in a BodyContent slot
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer instance associated with this component.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Warn("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}

// SetSlotParent associates this component with a parent layout.
// The router clears it when the component leaves the active chain.
func (b *ComponentBase) SetSlotParent(parent Component) {
	b.slotParent = parent
}

// SlotParent returns the layout this component is mounted into, if any.
func (b *ComponentBase) SlotParent() Component {
	return b.slotParent
}

// Navigate requests client-side navigation to a new path through the
// renderer's navigation manager.
//
// Example usage in a component:
//
//	func (c *MyComponent) HandleClick() {
//	    if err := c.Navigate("/topics"); err != nil {
//	        console.Error("Navigation failed:", err.Error())
//	    }
//	}
//
// Returns an error wrapping ErrNoNavigator if the component is not mounted.
func (b *ComponentBase) Navigate(path string) error {
	if b.renderer == nil {
		return fmt.Errorf("navigate to %q: component not mounted: %w", path, ErrNoNavigator)
	}
	return b.renderer.Navigate(path)
}
