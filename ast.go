package astcql

import "github.com/zoobzio/astcql/internal/types"

// Term is a value or bind marker used in a statement.
type Term = types.Term

// UsingClause is an option rendered after USING, in batches and mutations.
type UsingClause = types.UsingClause

// Value wraps a concrete value. It renders as a literal when values are not
// collected, and as a marker with a collected value otherwise.
func Value(v any) Term {
	return types.Term{Value: v}
}

// BindMarker returns an anonymous "?" marker whose value is supplied at
// execution time.
func BindMarker() Term {
	return types.Term{Marker: true}
}

// TTL creates a USING TTL option.
func TTL(t Term) UsingClause {
	return types.Using{Keyword: "TTL", Value: t}
}

// Timestamp creates a USING TIMESTAMP option.
func Timestamp(t Term) UsingClause {
	return types.Using{Keyword: "TIMESTAMP", Value: t}
}
