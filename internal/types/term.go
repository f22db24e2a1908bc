package types

import (
	"reflect"
	"strings"

	"github.com/zoobzio/astcql/internal/render"
)

// Term is either a concrete value or an anonymous bind marker.
type Term struct {
	Value  any
	Marker bool
}

// IsMarker reports whether the term is a bind marker.
func (t Term) IsMarker() bool {
	return t.Marker
}

// Render writes the term. Markers always render as "?" and reserve a slot
// in c. Values become "?" plus a collected value when c is non-nil, and an
// inline literal otherwise.
func (t Term) Render(c *Collector) string {
	if t.Marker {
		if c != nil {
			c.Marker()
		}
		return "?"
	}
	if c != nil {
		c.Add(t.Value)
		return "?"
	}
	return render.Literal(t.Value)
}

// RenderIn writes the term as the right-hand side of an IN relation.
// Inline list values render as a parenthesised tuple.
func (t Term) RenderIn(c *Collector) string {
	if t.Marker || c != nil {
		return t.Render(c)
	}
	rv := reflect.ValueOf(t.Value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return "(" + render.Literal(t.Value) + ")"
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = render.Literal(rv.Index(i).Interface())
	}
	return "(" + strings.Join(parts, ",") + ")"
}
