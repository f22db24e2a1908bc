package types

// UnsetValue marks a bind-marker slot that no value has been supplied for.
type UnsetValue struct{}

// Unset is the placeholder stored in unfilled marker slots.
var Unset = UnsetValue{}

// Collector accumulates bind values in the order their markers appear.
type Collector struct {
	values []any
	slots  []int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a concrete value.
func (c *Collector) Add(v any) {
	c.values = append(c.values, v)
}

// AddAll appends values in order.
func (c *Collector) AddAll(values []any) {
	c.values = append(c.values, values...)
}

// Marker reserves a slot for a value supplied at execution time.
func (c *Collector) Marker() {
	c.slots = append(c.slots, len(c.values))
	c.values = append(c.values, Unset)
}

// Len returns the number of collected values, reserved slots included.
func (c *Collector) Len() int {
	return len(c.values)
}

// Slots returns the number of reserved marker slots.
func (c *Collector) Slots() int {
	return len(c.slots)
}

// Fill assigns values to reserved slots in order. Extra values are ignored;
// slots without a value keep Unset.
func (c *Collector) Fill(values []any) {
	for i, idx := range c.slots {
		if i >= len(values) {
			return
		}
		c.values[idx] = values[i]
	}
}

// Values returns a copy of the collected values.
func (c *Collector) Values() []any {
	if len(c.values) == 0 {
		return nil
	}
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}
