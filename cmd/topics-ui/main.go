//go:build js || wasm

package main

import (
	"github.com/vcrobe/topics-ui/console"
	"github.com/vcrobe/topics-ui/dialogs"
	"github.com/vcrobe/topics-ui/internal/app"
	"github.com/vcrobe/topics-ui/router"
	"github.com/vcrobe/topics-ui/runtime"
)

func main() {
	// Path mode needs the dev server's index.html fallback; use
	// router.HashMode when serving from a plain file server.
	history := router.NewBrowserHistory(router.PathMode)

	ui := app.New(history, runtime.NewDOMSurface("#app"),
		app.WithErrorHandler(func(err error) {
			console.Error("Navigation failed:", err.Error())
			dialogs.Alert(err.Error())
		}),
	)

	if err := ui.Start(); err != nil {
		console.Error("Failed to start router:", err.Error())
		panic(err)
	}

	// Keep the Go program running
	select {}
}
