package router

import (
	"fmt"

	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/vdom"
)

// Layout is implemented by components that host a child page in a
// BodyContent slot.
type Layout interface {
	SetBodyContent(children []*vdom.VNode)
}

// AppShell is a stable root component that holds the persistent layout
// and swaps only the BodyContent slot when navigation occurs. Layout
// instances keep their internal state across navigations.
type AppShell struct {
	runtime.ComponentBase

	persistentLayout runtime.Component
	currentChain     []runtime.Component
	currentKey       string
}

// NewAppShell creates a new AppShell with the given persistent layout component.
func NewAppShell(persistentLayout runtime.Component) *AppShell {
	return &AppShell{
		persistentLayout: persistentLayout,
		currentChain:     make([]runtime.Component, 0),
	}
}

// SetPage replaces the chain of component instances and triggers a re-render.
// The persistent layout is prepended when the chain does not start with it.
func (a *AppShell) SetPage(chain []runtime.Component, key string) {
	if a.persistentLayout != nil && (len(chain) == 0 || chain[0] != a.persistentLayout) {
		fullChain := make([]runtime.Component, 0, len(chain)+1)
		fullChain = append(fullChain, a.persistentLayout)
		fullChain = append(fullChain, chain...)
		chain = fullChain
	}
	a.currentChain = chain
	a.currentKey = key
	a.StateHasChanged()
}

// CurrentKey returns the key passed with the last SetPage call.
func (a *AppShell) CurrentKey() string {
	return a.currentKey
}

// Chain returns the chain currently composed by the shell.
func (a *AppShell) Chain() []runtime.Component {
	return a.currentChain
}

// Render composes the chain leaf-first: each child's VNode is injected into
// its parent's BodyContent slot, then the outermost component is rendered.
func (a *AppShell) Render(r runtime.Renderer) *vdom.VNode {
	if len(a.currentChain) == 0 {
		if a.persistentLayout != nil {
			return r.RenderChild("persistent-layout", a.persistentLayout)
		}
		return vdom.Div(nil)
	}

	for i := len(a.currentChain) - 1; i > 0; i-- {
		child := a.currentChain[i]
		parent := a.currentChain[i-1]

		childVNode := r.RenderChild(slotKey(i, child), child)
		if layout, ok := parent.(Layout); ok {
			layout.SetBodyContent([]*vdom.VNode{childVNode})
		}
	}

	root := a.currentChain[0]
	if root == a.persistentLayout {
		return r.RenderChild("persistent-layout", root)
	}
	return r.RenderChild(slotKey(0, root), root)
}

func slotKey(depth int, c runtime.Component) string {
	return fmt.Sprintf("slot-%d-%T-%p", depth, c, c)
}
