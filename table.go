package astcql

import (
	"fmt"

	"github.com/zoobzio/astcql/internal/types"
)

// maxNameLength is the CQL limit on keyspace and table names.
const maxNameLength = 48

// TryT creates a validated table reference, returning an error if invalid.
func TryT(name string) (types.Table, error) {
	if err := validateName(name); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return types.Table{Name: name}, nil
}

// T creates a validated table reference.
func T(name string) types.Table {
	t, err := TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryKT creates a validated keyspace-qualified table reference.
func TryKT(keyspace, name string) (types.Table, error) {
	if err := validateName(keyspace); err != nil {
		return types.Table{}, fmt.Errorf("invalid keyspace: %w", err)
	}
	t, err := TryT(name)
	if err != nil {
		return types.Table{}, err
	}
	t.Keyspace = keyspace
	return t, nil
}

// KT creates a validated keyspace-qualified table reference.
func KT(keyspace, name string) types.Table {
	t, err := TryKT(keyspace, name)
	if err != nil {
		panic(err)
	}
	return t
}

func validateName(name string) error {
	if len(name) > maxNameLength {
		return NewInvalidArgumentError(fmt.Sprintf("name %q exceeds %d characters", name, maxNameLength))
	}
	return validateIdentifier(name)
}
