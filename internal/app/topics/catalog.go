package topics

import "sort"

// Topic is an entry shown on the explore page.
type Topic struct {
	Slug    string
	Title   string
	Summary string
}

// Catalog is an ordered, read-only set of topics.
type Catalog struct {
	topics []Topic
	bySlug map[string]Topic
}

// NewCatalog builds a catalog sorted by title. Later duplicates of a slug are ignored.
func NewCatalog(items ...Topic) *Catalog {
	c := &Catalog{bySlug: make(map[string]Topic, len(items))}
	for _, t := range items {
		if _, dup := c.bySlug[t.Slug]; dup || t.Slug == "" {
			continue
		}
		c.bySlug[t.Slug] = t
		c.topics = append(c.topics, t)
	}
	sort.SliceStable(c.topics, func(i, j int) bool {
		return c.topics[i].Title < c.topics[j].Title
	})
	return c
}

// Default returns the topics shipped with the app.
func Default() *Catalog {
	return NewCatalog(
		Topic{Slug: "golang", Title: "Go", Summary: "Services, tooling and the standard library."},
		Topic{Slug: "wasm", Title: "WebAssembly", Summary: "Running compiled code in the browser."},
		Topic{Slug: "microservices", Title: "Microservices", Summary: "Small services that talk over the network."},
		Topic{Slug: "databases", Title: "Databases", Summary: "Storage engines, queries and schemas."},
	)
}

// All returns the topics in display order.
func (c *Catalog) All() []Topic {
	return append([]Topic(nil), c.topics...)
}

// Lookup finds a topic by slug.
func (c *Catalog) Lookup(slug string) (Topic, bool) {
	t, ok := c.bySlug[slug]
	return t, ok
}
