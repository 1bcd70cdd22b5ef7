package pages

import (
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/vdom"
)

// HomePage is the component rendered for the "/" route.
type HomePage struct {
	runtime.ComponentBase
}

func (h *HomePage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "home-page"},
		vdom.Heading(1, "Welcome", nil),
		vdom.Paragraph("Pick Explore to browse topics.", nil),
	)
}
