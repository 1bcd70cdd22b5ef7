package router

import (
	"strings"

	"github.com/vcrobe/topics-ui/runtime"
)

// Route defines a path and its component chain (layout hierarchy + page).
// Path segments written as {name} capture the matching URL segment.
type Route struct {
	Path  string
	Chain []ComponentMetadata
}

// ComponentMetadata holds the factory and type ID for a component.
// Equal TypeIDs at the same chain depth let the router keep the live instance.
type ComponentMetadata struct {
	Factory runtime.ComponentFactory
	TypeID  uint32
}

func normalize(path string) string {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

func segments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func isParam(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// match reports whether path matches the pattern and returns captured params.
func match(pattern, path string) (map[string]string, bool) {
	pattern, path = normalize(pattern), normalize(path)
	params := make(map[string]string)
	if pattern == path {
		return params, true
	}

	patternParts := segments(pattern)
	pathParts := segments(path)
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	for i, part := range patternParts {
		if isParam(part) {
			params[strings.Trim(part, "{}")] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}
