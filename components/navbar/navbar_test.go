package navbar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/topics-ui/router"
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/signals"
	"github.com/vcrobe/topics-ui/testcomponents"
	"github.com/vcrobe/topics-ui/vdom"
)

func regions(t *testing.T, root *vdom.VNode) (home, explore *vdom.VNode) {
	t.Helper()
	interactive := vdom.FindAll(root, (*vdom.VNode).Interactive)
	require.Len(t, interactive, 2, "the bar must expose exactly two interactive regions")
	return interactive[0], interactive[1]
}

func TestNavigationBar_RendersTwoRegions(t *testing.T) {
	bar := NewNavigationBar(&testcomponents.RecordingNavigator{})
	vnode := testcomponents.NewTestRenderer(bar).RenderRoot()

	assert.Equal(t, "div", vnode.Tag)
	assert.Equal(t, "outer-div-nav-bar", vnode.Class())

	home, explore := regions(t, vnode)

	assert.Equal(t, "div", home.Tag)
	assert.Equal(t, "home-button", home.Class())
	assert.Empty(t, home.Content, "home region has no visible label")

	assert.Equal(t, "button", explore.Tag)
	assert.Equal(t, "explore-button", explore.Class())
	assert.Equal(t, "Explore", explore.Content)
}

func TestNavigationBar_RenderDoesNotNavigate(t *testing.T) {
	nav := &testcomponents.RecordingNavigator{}
	renderer := testcomponents.NewTestRenderer(NewNavigationBar(nav))

	renderer.RenderRoot()
	renderer.ReRender()

	assert.Empty(t, nav.Paths)
	assert.Empty(t, renderer.Navigations)
}

func TestNavigationBar_ClickHome(t *testing.T) {
	nav := &testcomponents.RecordingNavigator{}
	vnode := testcomponents.NewTestRenderer(NewNavigationBar(nav)).RenderRoot()
	home, _ := regions(t, vnode)

	require.True(t, testcomponents.Click(home))

	assert.Equal(t, []string{"/"}, nav.Paths)
}

func TestNavigationBar_ClickExplore(t *testing.T) {
	nav := &testcomponents.RecordingNavigator{}
	vnode := testcomponents.NewTestRenderer(NewNavigationBar(nav)).RenderRoot()
	_, explore := regions(t, vnode)

	require.True(t, testcomponents.Click(explore))

	assert.Equal(t, []string{"/topics"}, nav.Paths)
}

func TestNavigationBar_Activations(t *testing.T) {
	tests := []struct {
		name     string
		activate func(*NavigationBar) error
		want     string
	}{
		{"home", (*NavigationBar).OnHomeActivated, HomeRoute},
		{"explore", (*NavigationBar).OnExploreActivated, ExploreRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &testcomponents.RecordingNavigator{}
			bar := NewNavigationBar(nav)

			require.NoError(t, tt.activate(bar))
			assert.Equal(t, []string{tt.want}, nav.Paths)
		})
	}
}

func TestNavigationBar_MissingNavigator(t *testing.T) {
	bar := NewNavigationBar(nil)

	assert.NotPanics(t, func() {
		testcomponents.NewTestRenderer(bar).RenderRoot()
	}, "rendering never fails for a missing navigator")

	err := bar.OnHomeActivated()
	assert.ErrorIs(t, err, ErrMissingDependency)

	err = bar.OnExploreActivated()
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestNavigationBar_NilNavigatorVariants(t *testing.T) {
	tests := []struct {
		name string
		nav  runtime.Navigator
	}{
		{"untyped nil", nil},
		{"nil engine", (*router.Engine)(nil)},
		{"nil recording navigator", (*testcomponents.RecordingNavigator)(nil)},
		{"nil navigator func", runtime.NavigatorFunc(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewNavigationBar(tt.nav)

			var homeErr, exploreErr error
			require.NotPanics(t, func() {
				homeErr = bar.OnHomeActivated()
				exploreErr = bar.OnExploreActivated()
			})
			assert.ErrorIs(t, homeErr, ErrMissingDependency)
			assert.ErrorIs(t, exploreErr, ErrMissingDependency)
		})
	}
}

func TestNavigationBar_ApplyPropsNilEngine(t *testing.T) {
	nav := &testcomponents.RecordingNavigator{}
	live := NewNavigationBar(nav)

	live.ApplyProps(&NavigationBar{nav: (*router.Engine)(nil)})

	require.NotPanics(t, func() {
		assert.ErrorIs(t, live.OnHomeActivated(), ErrMissingDependency)
	})
	assert.Empty(t, nav.Paths)
}

func TestNavigationBar_MissingNavigatorClickReportsError(t *testing.T) {
	bar := NewNavigationBar(nil)
	var reported []error
	bar.OnError = func(err error) { reported = append(reported, err) }
	renderer := testcomponents.NewTestRenderer(bar)
	home, explore := regions(t, renderer.RenderRoot())

	testcomponents.Click(home)
	testcomponents.Click(explore)

	require.Len(t, reported, 2)
	for _, err := range reported {
		assert.ErrorIs(t, err, ErrMissingDependency)
	}
	assert.Empty(t, renderer.Navigations, "the renderer's navigator is not used as a fallback")
}

func TestNavigationBar_NavigatorErrorIsWrapped(t *testing.T) {
	routeErr := errors.New("no route")
	bar := NewNavigationBar(&testcomponents.RecordingNavigator{Err: routeErr})

	err := bar.OnExploreActivated()

	assert.ErrorIs(t, err, routeErr)
	assert.Contains(t, err.Error(), `"/topics"`)
}

func TestNavigationBar_ActiveRoute(t *testing.T) {
	active := signals.NewSignal(HomeRoute)
	bar := NewNavigationBar(&testcomponents.RecordingNavigator{})
	bar.Active = active
	renderer := testcomponents.NewTestRenderer(bar)
	bar.OnInit()
	t.Cleanup(bar.OnDestroy)

	home, explore := regions(t, renderer.RenderRoot())
	assert.Equal(t, "page", home.Attr("aria-current"))
	assert.Nil(t, explore.Attr("aria-current"))

	before := renderer.RenderCount()
	active.Set(ExploreRoute)
	assert.Equal(t, before+1, renderer.RenderCount(), "route change re-renders the bar")

	home, explore = regions(t, renderer.GetCurrentVDOM())
	assert.Nil(t, home.Attr("aria-current"))
	assert.Equal(t, "page", explore.Attr("aria-current"))
}

func TestNavigationBar_ApplyProps(t *testing.T) {
	first := &testcomponents.RecordingNavigator{}
	second := &testcomponents.RecordingNavigator{}
	live := NewNavigationBar(first)

	live.ApplyProps(NewNavigationBar(second))
	require.NoError(t, live.OnHomeActivated())

	assert.Empty(t, first.Paths)
	assert.Equal(t, []string{"/"}, second.Paths)
}
