package types

// UsingClause is a batch or statement option rendered after USING.
type UsingClause interface {
	RenderUsing(c *Collector) string
}

// Using is a keyword option such as TTL or TIMESTAMP.
type Using struct {
	Keyword string
	Value   Term
}

// RenderUsing renders "KEYWORD term".
func (u Using) RenderUsing(c *Collector) string {
	return u.Keyword + " " + u.Value.Render(c)
}

// UsingHasMarker reports whether rendering u reserves any marker slot.
func UsingHasMarker(u UsingClause) bool {
	c := NewCollector()
	u.RenderUsing(c)
	return c.Slots() > 0
}
