package pages

import (
	"github.com/vcrobe/topics-ui/console"
	"github.com/vcrobe/topics-ui/internal/app/topics"
	"github.com/vcrobe/topics-ui/runtime"
	"github.com/vcrobe/topics-ui/vdom"
)

// TopicPage shows one topic, selected by the {topic} route parameter.
type TopicPage struct {
	runtime.ComponentBase
	Catalog *topics.Catalog
	Slug    string
}

func (p *TopicPage) Render(r runtime.Renderer) *vdom.VNode {
	var t topics.Topic
	found := false
	if p.Catalog != nil {
		t, found = p.Catalog.Lookup(p.Slug)
	}
	if !found {
		return vdom.Div(map[string]any{"class": "topic-page"},
			vdom.Heading(1, "Unknown topic", nil),
			vdom.Paragraph("No topic named "+p.Slug+".", nil),
		)
	}
	return vdom.Div(map[string]any{"class": "topic-page"},
		vdom.Heading(1, t.Title, nil),
		vdom.Paragraph(t.Summary, nil),
		vdom.Button("All topics", map[string]any{
			"class":   "back-link",
			"onClick": p.BackToTopics,
		}),
	)
}

// BackToTopics returns to the topics listing.
func (p *TopicPage) BackToTopics() {
	if err := p.Navigate("/topics"); err != nil {
		console.Error("Navigation failed:", err.Error())
	}
}
