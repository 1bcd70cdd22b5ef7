//go:build js || wasm
// +build js wasm

package runtime

import "github.com/vcrobe/topics-ui/vdom"

// domSurface renders into the element matched by a CSS selector.
type domSurface struct {
	selector string
}

func (s domSurface) Mount(n *vdom.VNode) {
	vdom.Clear(s.selector, nil)
	vdom.RenderToSelector(s.selector, n)
}

func (s domSurface) Patch(prev, next *vdom.VNode) {
	vdom.Patch(s.selector, prev, next)
}

// NewDOMSurface returns a Surface drawing into the element matching selector.
func NewDOMSurface(selector string) Surface {
	return domSurface{selector: selector}
}
