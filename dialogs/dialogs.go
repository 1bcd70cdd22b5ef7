//go:build js || wasm

package dialogs

import (
	"syscall/js"
)

// Alert shows a blocking browser alert.
func Alert(msg string) {
	js.Global().Call("alert", msg)
}

