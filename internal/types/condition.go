package types

// Condition represents a single relation: field operator term.
type Condition struct {
	Field    Field
	Operator Operator
	Value    Term
}

// AssignmentKind distinguishes plain assignments from counter updates.
type AssignmentKind int

const (
	AssignSet AssignmentKind = iota
	AssignIncrement
	AssignDecrement
)

// IsCounter reports whether the assignment modifies a counter column.
func (k AssignmentKind) IsCounter() bool {
	return k == AssignIncrement || k == AssignDecrement
}

// Assignment represents a column assignment in INSERT or UPDATE.
type Assignment struct {
	Field Field
	Value Term
	Kind  AssignmentKind
}
