package astcql

import (
	"strings"

	"github.com/zoobzio/astcql/internal/render"
	"github.com/zoobzio/astcql/internal/types"
)

// MarkerValidator checks a batch after each mutation. A non-nil error
// rejects the mutation that triggered it.
type MarkerValidator func(b *Batch) error

// Batch builds a BEGIN ... APPLY BATCH statement from other statements.
//
// A Batch is not safe for concurrent mutation. Rendering does not modify
// it and may be repeated.
type Batch struct {
	options    *Options
	counterOp  *bool
	routingKey []byte
	statements []Statement
	bound      []any
	validators []MarkerValidator
	err        error
	logged     bool
	// hasBindMarkers follows the last built statement added, unless a
	// raw statement, which may hide markers, has been seen.
	hasBindMarkers bool
	mayHideMarkers bool
}

// batchState is the part of a Batch a rejected mutation must restore.
type batchState struct {
	counterOp      *bool
	routingKey     []byte
	statements     int
	usings         int
	hasBindMarkers bool
	mayHideMarkers bool
}

// NewBatch creates a logged batch holding the given statements.
func NewBatch(statements ...Statement) *Batch {
	return newBatch(true, statements)
}

// NewUnloggedBatch creates an unlogged batch holding the given statements.
func NewUnloggedBatch(statements ...Statement) *Batch {
	return newBatch(false, statements)
}

func newBatch(logged bool, statements []Statement) *Batch {
	b := &Batch{
		logged:     logged,
		statements: make([]Statement, 0, len(statements)),
		validators: []MarkerValidator{validateBoundValues},
	}
	b.options = &Options{batch: b}
	for _, s := range statements {
		b.Add(s)
	}
	return b
}

// TryAdd appends a statement, returning an error if it cannot join the batch.
// On error the batch is left unchanged.
func (b *Batch) TryAdd(s Statement) error {
	if isNilStatement(s) {
		return NewInvalidArgumentError("statement cannot be nil")
	}
	if _, ok := s.(*Batch); ok {
		return NewInvalidArgumentError("batches cannot be nested")
	}

	built, isBuilt := s.(BuiltStatement)
	if _, isRegular := s.(RegularStatement); !isBuilt && !isRegular {
		return NewInvalidArgumentError("statement must be a BuiltStatement or a RegularStatement")
	}
	counter := isBuilt && built.IsCounterOp()
	if b.counterOp != nil && *b.counterOp != counter {
		return errMixedCounter
	}

	prev := b.state()

	if b.counterOp == nil {
		b.counterOp = &counter
	}

	if isBuilt {
		b.hasBindMarkers = b.mayHideMarkers || built.HasBindMarkers()
	} else {
		// Raw text may contain markers we cannot see.
		b.mayHideMarkers = true
		b.hasBindMarkers = true
	}

	b.statements = append(b.statements, s)

	if b.routingKey == nil {
		if key := s.RoutingKey(); key != nil {
			b.routingKey = key
		}
	}

	if err := b.checkForBindMarkers(); err != nil {
		b.restore(prev)
		return err
	}
	return nil
}

// isNilStatement also catches typed nil pointers of this package's statements.
func isNilStatement(s Statement) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *RawStatement:
		return v == nil
	case *Mutation:
		return v == nil
	case *Batch:
		return v == nil
	}
	return false
}

// Add appends a statement. The first error is recorded and returned by Err
// and Render; once an error is recorded further fluent calls are no-ops.
func (b *Batch) Add(s Statement) *Batch {
	if b.err != nil {
		return b
	}
	if err := b.TryAdd(s); err != nil {
		b.err = err
	}
	return b
}

// Using adds a batch option and returns the options for chaining.
func (b *Batch) Using(u UsingClause) *Options {
	return b.options.And(u)
}

// Options returns the batch options.
func (b *Batch) Options() *Options {
	return b.options
}

// TryBind supplies the values for the batch's anonymous bind markers.
// The number of values must equal MarkerCount.
func (b *Batch) TryBind(values ...any) error {
	if n := b.MarkerCount(); n != len(values) {
		return BindMarkerMismatchError{Expected: n, Got: len(values)}
	}
	b.bound = make([]any, len(values))
	copy(b.bound, values)
	return nil
}

// Bind is the fluent form of TryBind.
func (b *Batch) Bind(values ...any) *Batch {
	if b.err != nil {
		return b
	}
	if err := b.TryBind(values...); err != nil {
		b.err = err
	}
	return b
}

// WithMarkerValidator registers a hook run after every Add and Options.And.
func (b *Batch) WithMarkerValidator(v MarkerValidator) *Batch {
	if v != nil {
		b.validators = append(b.validators, v)
	}
	return b
}

// MarkerCount returns the number of anonymous markers the batch implies:
// BindMarker terms in built statements and options, and '?' in raw
// statements that carry no fixed values.
func (b *Batch) MarkerCount() int {
	c := types.NewCollector()
	b.RenderCQL(c)
	return c.Slots()
}

// BoundValues returns a copy of the values supplied with Bind.
func (b *Batch) BoundValues() []any {
	if b.bound == nil {
		return nil
	}
	out := make([]any, len(b.bound))
	copy(out, b.bound)
	return out
}

func (b *Batch) checkForBindMarkers() error {
	for _, v := range b.validators {
		if err := v(b); err != nil {
			return err
		}
	}
	return nil
}

// validateBoundValues rejects mutations that imply more markers than the
// values already bound to the batch.
func validateBoundValues(b *Batch) error {
	if b.bound == nil {
		return nil
	}
	if n := b.MarkerCount(); n > len(b.bound) {
		return BindMarkerMismatchError{Expected: n, Got: len(b.bound)}
	}
	return nil
}

func (b *Batch) state() batchState {
	return batchState{
		counterOp:      b.counterOp,
		routingKey:     b.routingKey,
		statements:     len(b.statements),
		usings:         len(b.options.usings),
		hasBindMarkers: b.hasBindMarkers,
		mayHideMarkers: b.mayHideMarkers,
	}
}

func (b *Batch) restore(s batchState) {
	b.counterOp = s.counterOp
	b.routingKey = s.routingKey
	b.statements = b.statements[:s.statements]
	b.options.usings = b.options.usings[:s.usings]
	b.hasBindMarkers = s.hasBindMarkers
	b.mayHideMarkers = s.mayHideMarkers
}

// RenderCQL renders the batch. With a nil collector values are inlined;
// otherwise values and marker slots are appended to c in text order.
func (b *Batch) RenderCQL(c *Collector) string {
	var cql strings.Builder

	switch {
	case b.IsCounterOp():
		cql.WriteString("BEGIN COUNTER BATCH")
	case b.logged:
		cql.WriteString("BEGIN BATCH")
	default:
		cql.WriteString("BEGIN UNLOGGED BATCH")
	}

	if len(b.options.usings) > 0 {
		cql.WriteString(" USING ")
		for i, u := range b.options.usings {
			if i > 0 {
				cql.WriteString(" AND ")
			}
			cql.WriteString(u.RenderUsing(c))
		}
	}
	cql.WriteString(" ")

	if len(b.statements) == 0 {
		cql.WriteString(" ")
	}

	for _, s := range b.statements {
		if built, ok := s.(BuiltStatement); ok {
			cql.WriteString(render.TrimTerminate(built.RenderCQL(c)))
			continue
		}

		regular, ok := s.(RegularStatement)
		if !ok {
			continue
		}
		query := regular.QueryString()
		cql.WriteString(render.Terminate(query))

		if c == nil {
			continue
		}
		if values := regular.Values(); values != nil {
			c.AddAll(values)
			continue
		}
		for i := render.CountMarkers(query); i > 0; i-- {
			c.Marker()
		}
	}

	cql.WriteString("APPLY BATCH;")
	return cql.String()
}

// Render renders the batch with values collected in marker order. Values
// supplied with Bind fill the marker slots; unfilled slots hold Unset.
// It returns the first error recorded by a fluent call, if any.
func (b *Batch) Render() (*QueryResult, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := types.NewCollector()
	cql := b.RenderCQL(c)
	c.Fill(b.bound)
	return &QueryResult{
		CQL:        cql,
		Values:     c.Values(),
		Keyspace:   b.Keyspace(),
		RoutingKey: b.routingKey,
	}, nil
}

// MustRender renders the batch or panics on error.
func (b *Batch) MustRender() *QueryResult {
	result, err := b.Render()
	if err != nil {
		panic(err)
	}
	return result
}

// String renders the batch with values inlined.
func (b *Batch) String() string {
	return b.RenderCQL(nil)
}

// Err returns the first error recorded by a fluent call.
func (b *Batch) Err() error {
	return b.err
}

// RoutingKey returns the routing key of the earliest statement that has one.
func (b *Batch) RoutingKey() []byte {
	return b.routingKey
}

// Keyspace returns the keyspace of the first statement, or "" for an empty batch.
func (b *Batch) Keyspace() string {
	if len(b.statements) == 0 {
		return ""
	}
	return b.statements[0].Keyspace()
}

// IsCounterOp reports whether the batch holds counter mutations.
// An empty batch is not a counter batch.
func (b *Batch) IsCounterOp() bool {
	return b.counterOp != nil && *b.counterOp
}

// HasBindMarkers reports whether the batch may contain bind markers.
func (b *Batch) HasBindMarkers() bool {
	return b.hasBindMarkers
}

// IsLogged reports whether the batch was created as a logged batch.
func (b *Batch) IsLogged() bool {
	return b.logged
}

// Len returns the number of statements in the batch.
func (b *Batch) Len() int {
	return len(b.statements)
}

// Statements returns a copy of the statements in insertion order.
func (b *Batch) Statements() []Statement {
	out := make([]Statement, len(b.statements))
	copy(out, b.statements)
	return out
}
