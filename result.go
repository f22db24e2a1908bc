package astcql

// QueryResult contains rendered CQL and the values aligned with its markers.
type QueryResult struct {
	CQL        string
	Keyspace   string
	Values     []any
	RoutingKey []byte
}
