package astcql

import "github.com/zoobzio/astcql/internal/types"

// Re-export operation constants for public API.
const (
	OpInsert = types.OpInsert
	OpUpdate = types.OpUpdate
	OpDelete = types.OpDelete
)
