package types

// Operator represents CQL relation operators usable in WHERE and IF clauses.
type Operator string

const (
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="
	IN Operator = "IN"
)
