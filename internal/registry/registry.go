// Package registry holds the static table of operator tools exposed by
// the interactive menu. Tools are registered at compile time; there is
// no runtime discovery.
package registry

import (
	"context"
	"sort"

	"github.com/brewdeck/brewdeck/internal/console"
)

// Meta describes a tool in the menu.
type Meta struct {
	Name        string
	Description string
	// Order positions the tool in the menu; lower comes first
	Order int
}

// Tool is one capability exposed through the menu.
type Tool interface {
	Meta() Meta
	Run(ctx context.Context, s *console.Session) error
}

// Registry is an ordered, immutable tool table.
type Registry struct {
	tools []Tool
}

// New creates a registry, ordering tools by (order, name).
func New(tools ...Tool) *Registry {
	sorted := make([]Tool, len(tools))
	copy(sorted, tools)
	sort.SliceStable(sorted, func(a, b int) bool {
		ma, mb := sorted[a].Meta(), sorted[b].Meta()
		if ma.Order != mb.Order {
			return ma.Order < mb.Order
		}
		return ma.Name < mb.Name
	})
	return &Registry{tools: sorted}
}

// All returns the tools in menu order.
func (r *Registry) All() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Lookup returns the tool with the given menu name, or nil.
func (r *Registry) Lookup(name string) Tool {
	for _, t := range r.tools {
		if t.Meta().Name == name {
			return t
		}
	}
	return nil
}
