package pages

import (
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/vdom"
)

// NotFoundPage is shown for paths without a route.
type NotFoundPage struct {
	runtime.ComponentBase
	Path string
}

func (p *NotFoundPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "not-found-page"},
		vdom.Heading(1, "Page not found", nil),
		vdom.Paragraph("Nothing lives at "+p.Path+".", nil),
	)
}
