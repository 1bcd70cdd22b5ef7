package layouts

import (
	"github.com/vcrobe/topics-ui/components/navbar"
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/vdom"
)

// MainLayout is the persistent app shell: navigation bar on top, page below.
type MainLayout struct {
	runtime.ComponentBase

	NavBar *navbar.NavigationBar

	// BodyContent is the slot the router fills with the current page.
	BodyContent []*vdom.VNode
}

func (l *MainLayout) SetBodyContent(children []*vdom.VNode) {
	l.BodyContent = children
}

func (l *MainLayout) Render(r runtime.Renderer) *vdom.VNode {
	root := vdom.Div(map[string]any{"class": "app-layout"})
	if l.NavBar != nil {
		root.Children = append(root.Children, r.RenderChild("navbar", l.NavBar))
	}
	root.Children = append(root.Children, vdom.Div(map[string]any{"class": "app-body"}, l.BodyContent...))
	return root
}
