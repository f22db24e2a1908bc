package types

// Field represents a validated column reference.
// This is exported from the internal package so the root package can use it,
// but external users cannot import this package.
type Field struct {
	Name string
}

// GetName returns the column name.
func (f Field) GetName() string {
	return f.Name
}
