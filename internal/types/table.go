package types

// Table represents a validated table reference, optionally qualified by keyspace.
type Table struct {
	Keyspace string
	Name     string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetKeyspace returns the keyspace, or "" when the table is unqualified.
func (t Table) GetKeyspace() string {
	return t.Keyspace
}
