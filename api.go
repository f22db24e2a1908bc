// Package astcql provides a CQL mutation and batch-statement builder.
//
// Mutations are built as an Abstract Syntax Tree from fluent builder calls
// and rendered to CQL. Batches combine built mutations with opaque raw
// statements into a single BEGIN ... APPLY BATCH statement, collecting the
// bind values needed to execute it.
//
// # Basic Usage
//
//	users := astcql.KT("shop", "users")
//
//	insert := astcql.Insert(users).
//		Value(astcql.F("id"), astcql.Value(42)).
//		Value(astcql.F("name"), astcql.Value("alice")).
//		MustBuild()
//
//	batch := astcql.NewBatch(insert).
//		Add(astcql.Raw("DELETE FROM shop.carts WHERE user_id=?", 42))
//
//	result, err := batch.Render()
//	// result.CQL: BEGIN BATCH INSERT INTO shop.users (id, name) VALUES (?, ?);DELETE FROM shop.carts WHERE user_id=?;APPLY BATCH;
//	// result.Values: []any{42, "alice", 42}
//
// # Statement Kinds
//
// A batch accepts any BuiltStatement (Mutation, or your own type) and any
// RegularStatement (Raw, or your own type). Built statements report whether
// they are counter operations and whether they contain bind markers. Raw
// statements are never parsed; they are treated as non-counter and as
// possibly containing bind markers.
//
// # Batch Invariants
//
// Counter and non-counter statements cannot be mixed; the first statement
// fixes the batch kind. The routing key is that of the earliest statement
// that has one. Statements render in insertion order.
//
// # Options
//
// Batch options are added with Using and chained with And; Add on the
// options returns the batch:
//
//	batch.Using(astcql.TTL(astcql.Value(3600))).
//		And(astcql.Timestamp(astcql.BindMarker())).
//		Add(stmt)
//
// # Schema-Validated Usage
//
// For schema safety, create an ASTCQL instance from a DBML schema:
//
//	instance, err := astcql.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// These panic if the field/table doesn't exist in the schema
//	users := instance.T("users")
//	email := instance.F("email")
//
// # Execution
//
// The session package executes statements and batches through gocql.
package astcql
