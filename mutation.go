package astcql

import (
	"slices"

	"github.com/zoobzio/astcql/internal/types"
)

// Mutation is a built INSERT, UPDATE or DELETE statement.
type Mutation struct {
	ast        *types.AST
	routingKey []byte
}

// snapshot copies the AST so later builder calls cannot change a built mutation.
func snapshot(ast *types.AST) *types.AST {
	cp := *ast
	cp.Values = slices.Clone(ast.Values)
	cp.Assignments = slices.Clone(ast.Assignments)
	cp.Columns = slices.Clone(ast.Columns)
	cp.Where = slices.Clone(ast.Where)
	cp.Conditions = slices.Clone(ast.Conditions)
	cp.Usings = slices.Clone(ast.Usings)
	return &cp
}

// Operation returns the mutation kind.
func (m *Mutation) Operation() types.Operation {
	return m.ast.Operation
}

// RenderCQL renders the mutation without a trailing semicolon.
func (m *Mutation) RenderCQL(c *Collector) string {
	return renderMutation(m.ast, c)
}

// IsCounterOp reports whether the mutation increments or decrements counters.
func (m *Mutation) IsCounterOp() bool {
	return m.ast.IsCounterOp()
}

// HasBindMarkers reports whether the mutation contains any BindMarker term.
func (m *Mutation) HasBindMarkers() bool {
	c := types.NewCollector()
	renderMutation(m.ast, c)
	return c.Slots() > 0
}

// RoutingKey returns the key set with Builder.RoutingKey, or nil.
func (m *Mutation) RoutingKey() []byte {
	return m.routingKey
}

// Keyspace returns the target table's keyspace.
func (m *Mutation) Keyspace() string {
	return m.ast.Target.Keyspace
}

// Render renders the mutation with values collected in marker order.
// Bind markers appear as Unset in the result values.
func (m *Mutation) Render() (*QueryResult, error) {
	c := types.NewCollector()
	cql := renderMutation(m.ast, c)
	return &QueryResult{
		CQL:        cql,
		Values:     c.Values(),
		Keyspace:   m.Keyspace(),
		RoutingKey: m.routingKey,
	}, nil
}

// String renders the mutation with values inlined as literals.
func (m *Mutation) String() string {
	return renderMutation(m.ast, nil)
}
