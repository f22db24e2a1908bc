package types

import "fmt"

// Operation represents the kind of mutation.
type Operation string

const (
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// AST represents the abstract syntax tree for a CQL mutation.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type AST struct {
	Operation   Operation
	Target      Table
	Values      []Assignment  // INSERT columns, in order
	Assignments []Assignment  // UPDATE SET clause
	Columns     []Field       // DELETE column selection
	Where       []Condition   // WHERE relations, joined with AND
	Conditions  []Condition   // IF relations (lightweight transactions)
	Usings      []UsingClause // USING options
	IfNotExists bool
	IfExists    bool
}

// IsCounterOp reports whether the mutation updates counter columns.
func (ast *AST) IsCounterOp() bool {
	for _, a := range ast.Assignments {
		if a.Kind.IsCounter() {
			return true
		}
	}
	return false
}

// Validate performs basic validation on the AST.
func (ast *AST) Validate() error {
	if ast.Target.Name == "" {
		return fmt.Errorf("target table is required")
	}

	switch ast.Operation {
	case OpInsert:
		if len(ast.Values) == 0 {
			return fmt.Errorf("INSERT requires at least one value")
		}
		if len(ast.Where) > 0 || len(ast.Conditions) > 0 {
			return fmt.Errorf("INSERT cannot have WHERE or IF conditions")
		}
		if ast.IfExists {
			return fmt.Errorf("IF EXISTS cannot be used with INSERT")
		}
		seen := make(map[Field]bool, len(ast.Values))
		for _, v := range ast.Values {
			if seen[v.Field] {
				return fmt.Errorf("column %s is inserted more than once", v.Field.Name)
			}
			seen[v.Field] = true
		}
	case OpUpdate:
		if len(ast.Assignments) == 0 {
			return fmt.Errorf("UPDATE requires at least one assignment")
		}
		if len(ast.Where) == 0 {
			return fmt.Errorf("UPDATE requires a WHERE clause")
		}
		if ast.IfNotExists {
			return fmt.Errorf("IF NOT EXISTS can only be used with INSERT")
		}
		counter := ast.Assignments[0].Kind.IsCounter()
		for _, a := range ast.Assignments[1:] {
			if a.Kind.IsCounter() != counter {
				return fmt.Errorf("cannot mix counter and non-counter assignments in UPDATE")
			}
		}
		if counter && (ast.IfExists || len(ast.Conditions) > 0) {
			return fmt.Errorf("conditional updates are not supported on counter columns")
		}
	case OpDelete:
		if len(ast.Where) == 0 {
			return fmt.Errorf("DELETE requires a WHERE clause")
		}
		if ast.IfNotExists {
			return fmt.Errorf("IF NOT EXISTS can only be used with INSERT")
		}
	default:
		return fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	if ast.IfExists && len(ast.Conditions) > 0 {
		return fmt.Errorf("IF EXISTS cannot be combined with IF conditions")
	}

	return nil
}
