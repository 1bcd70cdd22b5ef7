package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	OnClick    func()         // Optional click event handler

	// eventCallbacks holds js.Func values created when the node was mounted,
	// so they can be released when the node is cleared.
	eventCallbacks []any
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is lifted into OnClick so it is
// never rendered as an HTML attribute.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// Attr returns the attribute value stored under key, or nil.
func (v *VNode) Attr(key string) any {
	if v == nil || v.Attributes == nil {
		return nil
	}
	return v.Attributes[key]
}

// Class returns the "class" attribute as a string.
func (v *VNode) Class() string {
	s, _ := v.Attr("class").(string)
	return s
}

// Interactive reports whether the node reacts to clicks.
func (v *VNode) Interactive() bool {
	return v != nil && v.OnClick != nil
}

// AddEventCallback stores a mounted event callback for later release.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callbacks stored by AddEventCallback.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks drops all stored callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside that range fall back to h1.
func Heading(level int, text string, attrs map[string]any) *VNode {
	tags := [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}
	if level < 1 || level > len(tags) {
		level = 1
	}
	return NewVNode(tags[level-1], attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Ul creates a <ul> VNode.
func Ul(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("ul", attrs, children, "")
}

// Li creates an <li> VNode.
func Li(text string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, text)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
