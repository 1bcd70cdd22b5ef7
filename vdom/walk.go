package vdom

// Find returns the first node in depth-first order for which match returns true.
func Find(root *VNode, match func(*VNode) bool) *VNode {
	if root == nil {
		return nil
	}
	if match(root) {
		return root
	}
	for _, child := range root.Children {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in depth-first order for which match returns true.
func FindAll(root *VNode, match func(*VNode) bool) []*VNode {
	var out []*VNode
	walk(root, func(n *VNode) {
		if match(n) {
			out = append(out, n)
		}
	})
	return out
}

// ByClass matches nodes whose class attribute equals class.
func ByClass(class string) func(*VNode) bool {
	return func(n *VNode) bool { return n.Class() == class }
}

func walk(n *VNode, fn func(*VNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		walk(child, fn)
	}
}
