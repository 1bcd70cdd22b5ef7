//go:build !dev
// +build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/topics-ui/console"
)

// recoverLifecycle logs a panic raised by a lifecycle hook instead of
// letting it take down the whole application.
func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(lifecyclePanicMessage(hook, key, rec))
	}
}

// lifecyclePanicMessage formats a recovered value as plain text; the browser
// console only accepts values js.ValueOf understands, and error is not one.
func lifecyclePanicMessage(hook, key string, rec any) string {
	return fmt.Sprintf("ERROR: %s panic in component %s: %v", hook, key, rec)
}

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

// callOnParametersSet invokes the OnPropertiesSet lifecycle method in production mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnPropertiesSet", key)
	receiver.OnPropertiesSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}
