package session

import (
	"github.com/gocql/gocql"

	"github.com/zoobzio/astcql"
)

// Request is a statement rendered for the driver.
type Request struct {
	CQL        string
	Values     []interface{}
	RoutingKey []byte
	Keyspace   string
	Kind       string
	// Statements is the number of statements in a batch, 0 otherwise.
	Statements int
}

// Statement kinds used in requests and metric labels.
const (
	KindBatch = "batch"
	KindBuilt = "built"
	KindRaw   = "raw"
)

// renderer is implemented by *astcql.Batch and *astcql.Mutation.
type renderer interface {
	Render() (*astcql.QueryResult, error)
}

// Prepare renders stmt with its values collected in marker order. Unset
// marker slots become gocql.UnsetValue.
func Prepare(stmt astcql.Statement) (*Request, error) {
	req := &Request{}

	if isNilPointer(stmt) {
		return nil, astcql.NewInvalidArgumentError("statement cannot be nil")
	}

	switch s := stmt.(type) {
	case nil:
		return nil, astcql.NewInvalidArgumentError("statement cannot be nil")
	case *astcql.Batch:
		result, err := s.Render()
		if err != nil {
			return nil, err
		}
		req.fromResult(result)
		req.Kind = KindBatch
		req.Statements = s.Len()
	case renderer:
		result, err := s.Render()
		if err != nil {
			return nil, err
		}
		req.fromResult(result)
		req.Kind = KindBuilt
	case astcql.BuiltStatement:
		c := astcql.NewCollector()
		req.CQL = s.RenderCQL(c)
		req.Values = driverValues(c.Values())
		req.RoutingKey = s.RoutingKey()
		req.Keyspace = s.Keyspace()
		req.Kind = KindBuilt
	case astcql.RegularStatement:
		req.CQL = s.QueryString()
		req.Values = driverValues(s.Values())
		req.RoutingKey = s.RoutingKey()
		req.Keyspace = s.Keyspace()
		req.Kind = KindRaw
	default:
		return nil, astcql.NewInvalidArgumentError("statement must be a BuiltStatement or a RegularStatement")
	}

	return req, nil
}

func isNilPointer(s astcql.Statement) bool {
	switch v := s.(type) {
	case *astcql.Batch:
		return v == nil
	case *astcql.Mutation:
		return v == nil
	case *astcql.RawStatement:
		return v == nil
	}
	return false
}

func (r *Request) fromResult(result *astcql.QueryResult) {
	r.CQL = result.CQL
	r.Values = driverValues(result.Values)
	r.RoutingKey = result.RoutingKey
	r.Keyspace = result.Keyspace
}

func driverValues(values []any) []interface{} {
	if len(values) == 0 {
		return nil
	}
	out := make([]interface{}, len(values))
	for i, v := range values {
		if v == astcql.Unset {
			out[i] = gocql.UnsetValue
			continue
		}
		out[i] = v
	}
	return out
}
