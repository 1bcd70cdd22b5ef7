package testcomponents

import (
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
// - Inspect navigation requests made through the renderer
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	renders     int

	// Navigations lists every path passed to Navigate, in order.
	Navigations []string}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.renders++
	r.currentVDOM = r.component.Render(r)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount returns how many times the root component has been rendered.
func (r *TestRenderer) RenderCount() int {
	return r.renders
}

// RenderChild renders child directly; instances are not tracked.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	return child.Render(r)
}

// Navigate records path; it never fails.
func (r *TestRenderer) Navigate(path string) error {
	r.Navigations = append(r.Navigations, path)
	return nil
}

// Click fires the click handler of node, reporting false if it has none.
func Click(node *vdom.VNode) bool {
	if node == nil || node.OnClick == nil {
		return false
	}
	node.OnClick()
	return true
}

// RecordingNavigator is a runtime.Navigator that remembers every request.
type RecordingNavigator struct {
	Paths []string
	Err   error
}

// Navigate records path and returns Err.
func (n *RecordingNavigator) Navigate(path string) error {
	n.Paths = append(n.Paths, path)
	return n.Err
}
