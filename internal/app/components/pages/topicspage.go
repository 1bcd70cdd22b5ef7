package pages

import (
	"github.com/vcrobe/topics-ui/console"
	"github.com/vcrobe/topics-ui/internal/app/topics"
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/vdom"
)

// TopicsPage lists every topic; clicking one opens its detail page.
type TopicsPage struct {
	runtime.ComponentBase
	Catalog *topics.Catalog
}

// OpenTopic navigates to the detail page of slug.
func (p *TopicsPage) OpenTopic(slug string) {
	if err := p.Navigate(TopicPath(slug)); err != nil {
		console.Error("Navigation failed:", err.Error())
	}
}

func (p *TopicsPage) Render(r runtime.Renderer) *vdom.VNode {
	list := vdom.Ul(map[string]any{"class": "topic-list"})
	if p.Catalog != nil {
		for _, t := range p.Catalog.All() {
			slug := t.Slug
			list.Children = append(list.Children, vdom.Li(t.Title, map[string]any{
				"class":     "topic-item",
				"data-slug": slug,
				"onClick":   func() { p.OpenTopic(slug) },
			}))
		}
	}
	return vdom.Div(map[string]any{"class": "topics-page"},
		vdom.Heading(1, "Topics", nil),
		list,
	)
}

// TopicPath returns the detail route for slug.
func TopicPath(slug string) string {
	return "/topics/" + slug
}
