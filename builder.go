package astcql

import (
	"fmt"

	"github.com/zoobzio/astcql/internal/types"
)

// c creates a simple relation (internal helper for builder).
func c(f types.Field, op types.Operator, t types.Term) types.Condition {
	return types.Condition{
		Field:    f,
		Operator: op,
		Value:    t,
	}
}

// Builder provides a fluent API for constructing mutations.
type Builder struct {
	ast        *types.AST
	routingKey []byte
	err        error
}

// GetAST returns the internal AST.
func (b *Builder) GetAST() *types.AST {
	return b.ast
}

// GetError returns the internal error.
func (b *Builder) GetError() error {
	return b.err
}

// Insert creates a new INSERT builder.
func Insert(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpInsert,
			Target:    t,
		},
	}
}

// Update creates a new UPDATE builder.
func Update(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpUpdate,
			Target:    t,
		},
	}
}

// Delete creates a new DELETE builder.
func Delete(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpDelete,
			Target:    t,
		},
	}
}

// Value adds a column value for INSERT queries. Columns render in call order.
func (b *Builder) Value(f types.Field, t types.Term) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpInsert {
		b.err = fmt.Errorf("Value() can only be used with INSERT queries")
		return b
	}
	b.ast.Values = append(b.ast.Values, types.Assignment{Field: f, Value: t})
	return b
}

// Set adds a column assignment for UPDATE queries.
func (b *Builder) Set(f types.Field, t types.Term) *Builder {
	return b.assign(types.AssignSet, f, t)
}

// Increment adds a counter increment (c = c + t) for UPDATE queries.
func (b *Builder) Increment(f types.Field, t types.Term) *Builder {
	return b.assign(types.AssignIncrement, f, t)
}

// Decrement adds a counter decrement (c = c - t) for UPDATE queries.
func (b *Builder) Decrement(f types.Field, t types.Term) *Builder {
	return b.assign(types.AssignDecrement, f, t)
}

func (b *Builder) assign(kind types.AssignmentKind, f types.Field, t types.Term) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpUpdate {
		b.err = fmt.Errorf("Set(), Increment() and Decrement() can only be used with UPDATE queries")
		return b
	}
	if len(b.ast.Assignments) > 0 && b.ast.Assignments[0].Kind.IsCounter() != kind.IsCounter() {
		b.err = fmt.Errorf("cannot mix counter and non-counter assignments in UPDATE")
		return b
	}
	b.ast.Assignments = append(b.ast.Assignments, types.Assignment{Field: f, Value: t, Kind: kind})
	return b
}

// Columns selects the columns a DELETE removes. Without columns the whole row is deleted.
func (b *Builder) Columns(fields ...types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpDelete {
		b.err = fmt.Errorf("Columns() can only be used with DELETE queries")
		return b
	}
	b.ast.Columns = append(b.ast.Columns, fields...)
	return b
}

// Where adds a WHERE relation. Multiple relations are joined with AND.
func (b *Builder) Where(f types.Field, op types.Operator, t types.Term) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation == types.OpInsert {
		b.err = fmt.Errorf("WHERE cannot be used with INSERT queries")
		return b
	}
	b.ast.Where = append(b.ast.Where, c(f, op, t))
	return b
}

// If adds a lightweight-transaction condition for UPDATE or DELETE.
func (b *Builder) If(f types.Field, op types.Operator, t types.Term) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation == types.OpInsert {
		b.err = fmt.Errorf("IF conditions cannot be used with INSERT queries")
		return b
	}
	b.ast.Conditions = append(b.ast.Conditions, c(f, op, t))
	return b
}

// IfNotExists makes an INSERT conditional on the row being absent.
func (b *Builder) IfNotExists() *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpInsert {
		b.err = fmt.Errorf("IF NOT EXISTS can only be used with INSERT queries")
		return b
	}
	b.ast.IfNotExists = true
	return b
}

// IfExists makes an UPDATE or DELETE conditional on the row existing.
func (b *Builder) IfExists() *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation == types.OpInsert {
		b.err = fmt.Errorf("IF EXISTS cannot be used with INSERT queries")
		return b
	}
	b.ast.IfExists = true
	return b
}

// Using adds a USING option such as TTL or TIMESTAMP.
func (b *Builder) Using(u UsingClause) *Builder {
	if b.err != nil {
		return b
	}
	if u == nil {
		b.err = fmt.Errorf("USING option cannot be nil")
		return b
	}
	b.ast.Usings = append(b.ast.Usings, u)
	return b
}

// RoutingKey sets the partition key bytes the mutation reports.
func (b *Builder) RoutingKey(key []byte) *Builder {
	if b.err != nil {
		return b
	}
	b.routingKey = key
	return b
}

// Build returns the constructed mutation or an error.
func (b *Builder) Build() (*Mutation, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := b.ast.Validate(); err != nil {
		return nil, err
	}

	return &Mutation{ast: snapshot(b.ast), routingKey: b.routingKey}, nil
}

// MustBuild returns the mutation or panics on error.
func (b *Builder) MustBuild() *Mutation {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// Render builds the mutation and renders it with collected values.
func (b *Builder) Render() (*QueryResult, error) {
	m, err := b.Build()
	if err != nil {
		return nil, err
	}
	return m.Render()
}

// MustRender builds and renders the mutation or panics on error.
func (b *Builder) MustRender() *QueryResult {
	result, err := b.Render()
	if err != nil {
		panic(err)
	}
	return result
}
