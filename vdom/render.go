//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/topics-ui/console"
)

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	releaseCallbacks(v)
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountElement(selector string) (js.Value, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), false
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

// Clear empties the mount element and releases callbacks held by prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}
	deepReleaseCallbacks(prevVDOM)

	mount, ok := mountElement(selector)
	if !ok {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount, ok := mountElement(selector)
	if !ok {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// Patch brings the mounted tree from prev to next.
// Trees are small, so the mount is rebuilt rather than diffed.
func Patch(selector string, prev, next *VNode) {
	Clear(selector, prev)
	RenderToSelector(selector, next)
}

// setAttributeValue sets an attribute on an element, handling boolean attributes.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		}
		return
	}
	if _, ok := value.(func()); ok {
		return
	}
	el.Call("setAttribute", key, value)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == "" {
		console.Error("VNode without a tag")
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	} else {
		for _, child := range n.Children {
			childEl := createElement(child)
			if childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
	}

	if n.OnClick != nil {
		handler := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			handler()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		n.AddEventCallback(cb)
	}
	return el
}
