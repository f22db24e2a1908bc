package astcql

import "github.com/zoobzio/astcql/internal/types"

// Options holds the USING options of a batch, in the order they were added.
type Options struct {
	batch  *Batch
	usings []UsingClause
}

// TryAnd adds an option. An option carrying a bind marker marks the batch
// as having bind markers. On error the batch is left unchanged.
func (o *Options) TryAnd(u UsingClause) error {
	if u == nil {
		return NewInvalidArgumentError("USING option cannot be nil")
	}

	prev := o.batch.state()

	o.usings = append(o.usings, u)
	if types.UsingHasMarker(u) {
		o.batch.hasBindMarkers = true
	}

	if err := o.batch.checkForBindMarkers(); err != nil {
		o.batch.restore(prev)
		return err
	}
	return nil
}

// And adds an option and returns the options for chaining. Errors are
// recorded on the batch, see Batch.Add.
func (o *Options) And(u UsingClause) *Options {
	if o.batch.err != nil {
		return o
	}
	if err := o.TryAnd(u); err != nil {
		o.batch.err = err
	}
	return o
}

// Add adds a statement to the batch these options belong to and returns the batch.
func (o *Options) Add(s Statement) *Batch {
	return o.batch.Add(s)
}

// Batch returns the batch these options belong to.
func (o *Options) Batch() *Batch {
	return o.batch
}

// Len returns the number of options.
func (o *Options) Len() int {
	return len(o.usings)
}
