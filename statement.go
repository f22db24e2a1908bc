package astcql

import "github.com/zoobzio/astcql/internal/types"

// Collector accumulates bind values while a statement renders.
type Collector = types.Collector

// NewCollector creates an empty bind-value collector.
func NewCollector() *Collector {
	return types.NewCollector()
}

// Unset fills marker slots that no value was bound to.
var Unset = types.Unset

// Statement is anything a batch can hold or a session can execute.
type Statement interface {
	// RoutingKey returns the partition key bytes, or nil when unknown.
	RoutingKey() []byte
	// Keyspace returns the statement keyspace, or "" when unqualified.
	Keyspace() string
}

// BuiltStatement is a self-describing statement that renders itself.
type BuiltStatement interface {
	Statement
	// RenderCQL renders the statement. With a nil collector values are
	// inlined as literals; otherwise they are replaced by markers and
	// appended to c in order.
	RenderCQL(c *Collector) string
	IsCounterOp() bool
	HasBindMarkers() bool
}

// RegularStatement is an opaque, pre-rendered statement.
type RegularStatement interface {
	Statement
	QueryString() string
	// Values returns the fixed values for the statement's markers, or nil.
	Values() []any
}

// RawStatement is a RegularStatement built from query text.
type RawStatement struct {
	query      string
	values     []any
	keyspace   string
	routingKey []byte
}

// Raw creates an opaque statement from query text and optional fixed values.
// The text is never parsed or validated.
func Raw(query string, values ...any) *RawStatement {
	return &RawStatement{query: query, values: values}
}

// WithRoutingKey sets the routing key reported by the statement.
func (s *RawStatement) WithRoutingKey(key []byte) *RawStatement {
	s.routingKey = key
	return s
}

// WithKeyspace sets the keyspace reported by the statement.
func (s *RawStatement) WithKeyspace(keyspace string) *RawStatement {
	s.keyspace = keyspace
	return s
}

func (s *RawStatement) QueryString() string { return s.query }
func (s *RawStatement) RoutingKey() []byte  { return s.routingKey }
func (s *RawStatement) Keyspace() string    { return s.keyspace }

func (s *RawStatement) Values() []any {
	if s.values == nil {
		return nil
	}
	out := make([]any, len(s.values))
	copy(out, s.values)
	return out
}

func (s *RawStatement) String() string { return s.query }
