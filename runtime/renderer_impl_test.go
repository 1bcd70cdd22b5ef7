package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/topics-ui/vdom"
)

type recordingSurface struct {
	mounts  int
	patches int
	last    *vdom.VNode
}

func (s *recordingSurface) Mount(n *vdom.VNode) {
	s.mounts++
	s.last = n
}

func (s *recordingSurface) Patch(prev, next *vdom.VNode) {
	s.patches++
	s.last = next
}

type fakeNav struct {
	paths []string
	err   error
}

func (f *fakeNav) Navigate(path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

func (f *fakeNav) Start(onChange func(chain []Component, key string)) error {
	return nil
}

// lifecycleRecorder records lifecycle calls.
type lifecycleRecorder struct {
	ComponentBase
	Label     string
	inits     int
	paramSets int
	destroys  int
}

func (p *lifecycleRecorder) OnInit()          { p.inits++ }
func (p *lifecycleRecorder) OnPropertiesSet() { p.paramSets++ }
func (p *lifecycleRecorder) OnDestroy()       { p.destroys++ }
func (p *lifecycleRecorder) ApplyProps(src Component) {
	if other, ok := src.(*lifecycleRecorder); ok {
		p.Label = other.Label
	}
}

func (p *lifecycleRecorder) Render(r Renderer) *vdom.VNode {
	return vdom.Paragraph(p.Label, nil)
}

// parent renders a lifecycleRecorder child only while ShowChild is set.
type parent struct {
	ComponentBase
	ShowChild  bool
	ChildLabel string
}

func (p *parent) Render(r Renderer) *vdom.VNode {
	root := vdom.Div(nil)
	if p.ShowChild {
		root.Children = append(root.Children, r.RenderChild("child", &lifecycleRecorder{Label: p.ChildLabel}))
	}
	return root
}

type panicky struct {
	ComponentBase
}

func (p *panicky) OnInit() { panic("boom") }
func (p *panicky) Render(r Renderer) *vdom.VNode {
	return vdom.Div(nil)
}

func TestRenderer_MountThenPatch(t *testing.T) {
	surface := &recordingSurface{}
	r := NewRendererWithSurface(nil, surface)
	root := &lifecycleRecorder{Label: "hello"}
	r.SetCurrentComponent(root, "root")

	r.RenderRoot()
	r.ReRender()

	assert.Equal(t, 1, surface.mounts)
	assert.Equal(t, 1, surface.patches)
	assert.Equal(t, 1, root.inits, "OnInit runs once for the root")
	assert.Equal(t, 2, root.paramSets, "OnPropertiesSet runs before every render")
	assert.Equal(t, "hello", surface.last.Content)
}

func TestRenderer_NewRootKeyRemounts(t *testing.T) {
	surface := &recordingSurface{}
	r := NewRendererWithSurface(nil, surface)

	first := &lifecycleRecorder{Label: "a"}
	r.SetCurrentComponent(first, "a")
	r.RenderRoot()

	second := &lifecycleRecorder{Label: "b"}
	r.SetCurrentComponent(second, "b")
	r.RenderRoot()

	assert.Equal(t, 2, surface.mounts)
	assert.Equal(t, 1, second.inits)
}

func TestRenderer_ChildLifecycle(t *testing.T) {
	r := NewRendererWithSurface(nil, &recordingSurface{})
	p := &parent{ShowChild: true, ChildLabel: "v1"}
	r.SetCurrentComponent(p, "parent")

	r.RenderRoot()
	child, ok := r.instances["child"].(*lifecycleRecorder)
	require.True(t, ok)
	assert.Equal(t, 1, child.inits)

	p.ChildLabel = "v2"
	r.ReRender()
	assert.Same(t, child, r.instances["child"], "child instance is reused across renders")
	assert.Equal(t, "v2", child.Label, "new props are applied to the live instance")
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, 2, child.paramSets)

	p.ShowChild = false
	r.ReRender()
	assert.Equal(t, 1, child.destroys)
	assert.NotContains(t, r.instances, "child")
}

func TestRenderer_RecoversLifecyclePanics(t *testing.T) {
	r := NewRendererWithSurface(nil, &recordingSurface{})
	r.SetCurrentComponent(&panicky{}, "panicky")

	assert.NotPanics(t, r.RenderRoot)
	assert.NotNil(t, r.CurrentVDOM())
}

func TestRenderer_NavigateWithoutManager(t *testing.T) {
	r := NewRendererWithSurface(nil, nil)

	err := r.Navigate("/topics")
	assert.True(t, errors.Is(err, ErrNoNavigator))
}

func TestRenderer_NavigateDelegates(t *testing.T) {
	nav := &fakeNav{}
	r := NewRendererWithSurface(nav, nil)

	require.NoError(t, r.Navigate("/"))
	assert.Equal(t, []string{"/"}, nav.paths)
}

func TestComponentBase_NavigateUnmounted(t *testing.T) {
	var b ComponentBase

	err := b.Navigate("/")
	assert.ErrorIs(t, err, ErrNoNavigator)
}

func TestComponentBase_NavigateThroughRenderer(t *testing.T) {
	nav := &fakeNav{err: errors.New("no route")}
	r := NewRendererWithSurface(nav, nil)
	c := &lifecycleRecorder{}
	c.SetRenderer(r)

	err := c.Navigate("/missing")
	assert.EqualError(t, err, "no route")
	assert.Equal(t, []string{"/missing"}, nav.paths)
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	var n Navigator = NavigatorFunc(func(path string) error {
		got = path
		return nil
	})

	require.NoError(t, n.Navigate("/topics"))
	assert.Equal(t, "/topics", got)
}
