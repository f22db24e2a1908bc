package astcql

import (
	"fmt"

	"github.com/zoobzio/astcql/internal/types"
	"github.com/zoobzio/dbml"
)

// ASTCQL represents an instance of the query builder with a specific DBML schema.
type ASTCQL struct {
	project  *dbml.Project
	keyspace string
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> field -> column
}

// NewFromDBML creates a new ASTCQL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*ASTCQL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	a := &ASTCQL{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		a.tables[table.Name] = table
		a.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			a.fields[table.Name][col.Name] = col
		}
	}

	return a, nil
}

// WithKeyspace qualifies every table reference created by the instance with keyspace.
func (a *ASTCQL) WithKeyspace(keyspace string) (*ASTCQL, error) {
	if err := validateName(keyspace); err != nil {
		return nil, fmt.Errorf("invalid keyspace: %w", err)
	}
	cp := *a
	cp.keyspace = keyspace
	return &cp, nil
}

// Keyspace returns the keyspace table references are qualified with.
func (a *ASTCQL) Keyspace() string {
	return a.keyspace
}

// validateTable checks if a table exists in the schema.
func (a *ASTCQL) validateTable(name string) error {
	if _, ok := a.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

// validateField checks if a field exists in any table in the schema.
func (a *ASTCQL) validateField(field string) error {
	for _, tableFields := range a.fields {
		if _, ok := tableFields[field]; ok {
			return nil
		}
	}
	return fmt.Errorf("field '%s' not found in schema", field)
}

// TryT creates a validated table reference, returning an error if invalid.
func (a *ASTCQL) TryT(name string) (types.Table, error) {
	if err := a.validateTable(name); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	if err := validateName(name); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return types.Table{Keyspace: a.keyspace, Name: name}, nil
}

// T creates a validated table reference.
func (a *ASTCQL) T(name string) types.Table {
	t, err := a.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a validated field reference, returning an error if invalid.
func (a *ASTCQL) TryF(name string) (types.Field, error) {
	if err := a.validateField(name); err != nil {
		return types.Field{}, fmt.Errorf("invalid field: %w", err)
	}
	if err := validateIdentifier(name); err != nil {
		return types.Field{}, fmt.Errorf("invalid field: %w", err)
	}
	return types.Field{Name: name}, nil
}

// F creates a validated field reference.
func (a *ASTCQL) F(name string) types.Field {
	f, err := a.TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TryTF validates that name is a column of table.
func (a *ASTCQL) TryTF(table, name string) (types.Field, error) {
	cols, ok := a.fields[table]
	if !ok {
		return types.Field{}, fmt.Errorf("invalid field: table '%s' not found in schema", table)
	}
	if _, ok := cols[name]; !ok {
		return types.Field{}, fmt.Errorf("invalid field: field '%s' not found in table '%s'", name, table)
	}
	if err := validateIdentifier(name); err != nil {
		return types.Field{}, fmt.Errorf("invalid field: %w", err)
	}
	return types.Field{Name: name}, nil
}

// TF creates a field reference validated against a specific table.
func (a *ASTCQL) TF(table, name string) types.Field {
	f, err := a.TryTF(table, name)
	if err != nil {
		panic(err)
	}
	return f
}
