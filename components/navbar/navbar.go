// Package navbar provides the top navigation bar of the topics UI.
package navbar

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/vcrobe/topics-ui/console"
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/signals"
	"github.com/vcrobe/topics-ui/vdom"
)

// Routes the bar can navigate to.
const (
	HomeRoute    = "/"
	ExploreRoute = "/topics"
)

// ErrMissingDependency is returned by an activation when the bar was built
// without a navigation capability.
var ErrMissingDependency = errors.New("navbar: navigation capability not supplied")

// NavigationBar renders the "home" and "Explore" regions and turns clicks on
// them into navigation requests. It keeps no state of its own.
type NavigationBar struct {
	runtime.ComponentBase

	nav runtime.Navigator

	// OnError receives errors raised by click handlers.
	// When nil they are written to the console.
	OnError func(error)

	// Active carries the current route; the matching region is marked with
	// aria-current="page". Optional.
	Active *signals.Signal[string]

	unsubscribe func()
}

// NewNavigationBar creates a bar that navigates through nav.
// A nil nav is accepted; activations then fail with ErrMissingDependency.
// A typed nil (e.g. a nil *router.Engine) counts as missing.
func NewNavigationBar(nav runtime.Navigator) *NavigationBar {
	return &NavigationBar{nav: present(nav)}
}

// present returns nil for an absent navigator, including a nil pointer,
// map, func or chan stored in the interface.
func present(nav runtime.Navigator) runtime.Navigator {
	if nav == nil {
		return nil
	}
	switch v := reflect.ValueOf(nav); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	}
	return nav
}

// OnHomeActivated navigates to the home route.
func (nb *NavigationBar) OnHomeActivated() error {
	return nb.activate(HomeRoute)
}

// OnExploreActivated navigates to the topics listing.
func (nb *NavigationBar) OnExploreActivated() error {
	return nb.activate(ExploreRoute)
}

func (nb *NavigationBar) activate(route string) error {
	if present(nb.nav) == nil {
		return fmt.Errorf("navigate to %q: %w", route, ErrMissingDependency)
	}
	if err := nb.nav.Navigate(route); err != nil {
		return fmt.Errorf("navigate to %q: %w", route, err)
	}
	return nil
}

// OnInit re-renders the bar whenever the active route changes.
func (nb *NavigationBar) OnInit() {
	if nb.Active != nil && nb.unsubscribe == nil {
		nb.unsubscribe = nb.Active.Subscribe(func(string) {
			nb.StateHasChanged()
		})
	}
}

// OnDestroy drops the active route subscription.
func (nb *NavigationBar) OnDestroy() {
	if nb.unsubscribe != nil {
		nb.unsubscribe()
		nb.unsubscribe = nil
	}
}

// ApplyProps copies the injected collaborators from a freshly built bar.
func (nb *NavigationBar) ApplyProps(source runtime.Component) {
	other, ok := source.(*NavigationBar)
	if !ok {
		return
	}
	nb.nav = present(other.nav)
	nb.OnError = other.OnError
	if other.Active != nb.Active {
		nb.OnDestroy()
		nb.Active = other.Active
		nb.OnInit()
	}
}

// Render implements runtime.Component. It has no side effects.
func (nb *NavigationBar) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "outer-div-nav-bar"},
		vdom.Div(nb.regionAttrs("home-button", HomeRoute, nb.OnHomeActivated, map[string]any{
			"role":       "button",
			"aria-label": "home",
		})),
		vdom.Button("Explore", nb.regionAttrs("explore-button", ExploreRoute, nb.OnExploreActivated, nil)),
	)
}

func (nb *NavigationBar) regionAttrs(class, route string, activate func() error, extra map[string]any) map[string]any {
	attrs := map[string]any{
		"class": class,
		"onClick": func() {
			if err := activate(); err != nil {
				nb.reportError(err)
			}
		},
	}
	for k, v := range extra {
		attrs[k] = v
	}
	if nb.Active != nil && nb.Active.Get() == route {
		attrs["aria-current"] = "page"
	}
	return attrs
}

func (nb *NavigationBar) reportError(err error) {
	if nb.OnError != nil {
		nb.OnError(err)
		return
	}
	console.Error("[NavigationBar]", err.Error())
}
