//go:build js || wasm

package router

import (
	"strings"
	"syscall/js"

	"github.com/vcrobe/topics-ui/console"
)

// BrowserHistory drives window.history and window.location.
type BrowserHistory struct {
	mode Mode
}

// NewBrowserHistory creates a History backed by the browser.
func NewBrowserHistory(mode Mode) *BrowserHistory {
	return &BrowserHistory{mode: mode}
}

func (h *BrowserHistory) Path() string {
	location := js.Global().Get("location")
	var path string
	if h.mode == HashMode {
		path = strings.TrimPrefix(location.Get("hash").String(), "#")
	} else {
		path = location.Get("pathname").String()
	}
	if path == "" {
		return "/"
	}
	return path
}

func (h *BrowserHistory) Push(path string) {
	url := path
	if h.mode == HashMode {
		url = "#" + path
	}
	js.Global().Get("history").Call("pushState", nil, "", url)
}

func (h *BrowserHistory) Listen(fn func(path string)) (stop func()) {
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		path := h.Path()
		console.Log("[BrowserHistory] popstate:", path)
		fn(path)
		return nil
	})
	js.Global().Call("addEventListener", "popstate", listener)

	return func() {
		js.Global().Call("removeEventListener", "popstate", listener)
		listener.Release()
	}
}
