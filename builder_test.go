package astcql_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zoobzio/astcql"
)

func TestBuilder_Render(t *testing.T) {
	tests := []struct {
		name           string
		builder        *astcql.Builder
		expectedCQL    string
		expectedValues []any
		expectedInline string
	}{
		{
			name: "insert",
			builder: astcql.Insert(astcql.KT("shop", "users")).
				Value(astcql.F("id"), astcql.Value(1)).
				Value(astcql.F("name"), astcql.Value("alice")),
			expectedCQL:    "INSERT INTO shop.users (id, name) VALUES (?, ?)",
			expectedValues: []any{1, "alice"},
			expectedInline: "INSERT INTO shop.users (id, name) VALUES (1, 'alice')",
		},
		{
			name: "insert if not exists with ttl",
			builder: astcql.Insert(astcql.T("users")).
				Value(astcql.F("id"), astcql.Value(1)).
				IfNotExists().
				Using(astcql.TTL(astcql.Value(86400))),
			expectedCQL:    "INSERT INTO users (id) VALUES (?) IF NOT EXISTS USING TTL ?",
			expectedValues: []any{1, 86400},
			expectedInline: "INSERT INTO users (id) VALUES (1) IF NOT EXISTS USING TTL 86400",
		},
		{
			name: "update if exists",
			builder: astcql.Update(astcql.T("users")).
				Using(astcql.Timestamp(astcql.Value(int64(5)))).
				Set(astcql.F("name"), astcql.Value("bob")).
				Where(astcql.F("id"), astcql.EQ, astcql.Value(1)).
				IfExists(),
			expectedCQL:    "UPDATE users USING TIMESTAMP ? SET name = ? WHERE id = ? IF EXISTS",
			expectedValues: []any{int64(5), "bob", 1},
			expectedInline: "UPDATE users USING TIMESTAMP 5 SET name = 'bob' WHERE id = 1 IF EXISTS",
		},
		{
			name: "update with conditions",
			builder: astcql.Update(astcql.T("accounts")).
				Set(astcql.F("balance"), astcql.Value(90)).
				Where(astcql.F("id"), astcql.EQ, astcql.Value(3)).
				If(astcql.F("balance"), astcql.GE, astcql.Value(100)),
			expectedCQL:    "UPDATE accounts SET balance = ? WHERE id = ? IF balance >= ?",
			expectedValues: []any{90, 3, 100},
			expectedInline: "UPDATE accounts SET balance = 90 WHERE id = 3 IF balance >= 100",
		},
		{
			name: "counter update",
			builder: astcql.Update(astcql.T("page_views")).
				Increment(astcql.F("hits"), astcql.Value(1)).
				Decrement(astcql.F("misses"), astcql.Value(2)).
				Where(astcql.F("page"), astcql.EQ, astcql.Value("home")),
			expectedCQL:    "UPDATE page_views SET hits = hits + ?, misses = misses - ? WHERE page = ?",
			expectedValues: []any{1, 2, "home"},
			expectedInline: "UPDATE page_views SET hits = hits + 1, misses = misses - 2 WHERE page = 'home'",
		},
		{
			name: "delete columns with condition",
			builder: astcql.Delete(astcql.T("users")).
				Columns(astcql.F("email")).
				Where(astcql.F("id"), astcql.EQ, astcql.Value(1)).
				If(astcql.F("name"), astcql.EQ, astcql.Value("x")),
			expectedCQL:    "DELETE email FROM users WHERE id = ? IF name = ?",
			expectedValues: []any{1, "x"},
			expectedInline: "DELETE email FROM users WHERE id = 1 IF name = 'x'",
		},
		{
			name: "delete with timestamp and multiple relations",
			builder: astcql.Delete(astcql.T("events")).
				Using(astcql.Timestamp(astcql.Value(7))).
				Where(astcql.F("day"), astcql.EQ, astcql.Value("mon")).
				Where(astcql.F("seq"), astcql.LT, astcql.Value(10)),
			expectedCQL:    "DELETE FROM events USING TIMESTAMP ? WHERE day = ? AND seq < ?",
			expectedValues: []any{7, "mon", 10},
			expectedInline: "DELETE FROM events USING TIMESTAMP 7 WHERE day = 'mon' AND seq < 10",
		},
		{
			name: "quoted identifier",
			builder: astcql.Insert(astcql.T("t")).
				Value(astcql.F("userName"), astcql.Value(true)),
			expectedCQL:    `INSERT INTO t ("userName") VALUES (?)`,
			expectedValues: []any{true},
			expectedInline: `INSERT INTO t ("userName") VALUES (true)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.builder.Render()
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if result.CQL != tt.expectedCQL {
				t.Errorf("Expected CQL:\n%s\nGot:\n%s", tt.expectedCQL, result.CQL)
			}
			if len(result.Values) != len(tt.expectedValues) {
				t.Fatalf("Values = %v, want %v", result.Values, tt.expectedValues)
			}
			for i := range tt.expectedValues {
				if result.Values[i] != tt.expectedValues[i] {
					t.Errorf("Values[%d] = %v, want %v", i, result.Values[i], tt.expectedValues[i])
				}
			}
			if got := tt.builder.MustBuild().String(); got != tt.expectedInline {
				t.Errorf("Expected inline CQL:\n%s\nGot:\n%s", tt.expectedInline, got)
			}
		})
	}
}

func TestBuilder_In(t *testing.T) {
	m := astcql.Delete(astcql.T("users")).
		Where(astcql.F("id"), astcql.IN, astcql.Value([]int{1, 2})).
		MustBuild()

	if got := m.String(); got != "DELETE FROM users WHERE id IN (1,2)" {
		t.Errorf("String() = %q", got)
	}

	result, err := m.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if result.CQL != "DELETE FROM users WHERE id IN ?" {
		t.Errorf("CQL = %q", result.CQL)
	}
	if len(result.Values) != 1 {
		t.Fatalf("Values = %v", result.Values)
	}
	if ids, ok := result.Values[0].([]int); !ok || len(ids) != 2 {
		t.Errorf("Values[0] = %v, want the id slice", result.Values[0])
	}
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *astcql.Builder
		errPart string
	}{
		{
			name:    "value on update",
			builder: astcql.Update(astcql.T("t")).Value(astcql.F("a"), astcql.Value(1)),
			errPart: "INSERT",
		},
		{
			name:    "set on insert",
			builder: astcql.Insert(astcql.T("t")).Set(astcql.F("a"), astcql.Value(1)),
			errPart: "UPDATE",
		},
		{
			name: "mixed counter assignments",
			builder: astcql.Update(astcql.T("t")).
				Set(astcql.F("a"), astcql.Value(1)).
				Increment(astcql.F("b"), astcql.Value(1)),
			errPart: "counter",
		},
		{
			name:    "where on insert",
			builder: astcql.Insert(astcql.T("t")).Where(astcql.F("a"), astcql.EQ, astcql.Value(1)),
			errPart: "WHERE",
		},
		{
			name:    "if on insert",
			builder: astcql.Insert(astcql.T("t")).If(astcql.F("a"), astcql.EQ, astcql.Value(1)),
			errPart: "IF",
		},
		{
			name:    "columns on update",
			builder: astcql.Update(astcql.T("t")).Columns(astcql.F("a")),
			errPart: "DELETE",
		},
		{
			name:    "if not exists on delete",
			builder: astcql.Delete(astcql.T("t")).IfNotExists(),
			errPart: "INSERT",
		},
		{
			name:    "if exists on insert",
			builder: astcql.Insert(astcql.T("t")).IfExists(),
			errPart: "IF EXISTS",
		},
		{
			name:    "nil using",
			builder: astcql.Insert(astcql.T("t")).Using(nil),
			errPart: "nil",
		},
		{
			name:    "insert without values",
			builder: astcql.Insert(astcql.T("t")),
			errPart: "at least one value",
		},
		{
			name: "duplicate insert column",
			builder: astcql.Insert(astcql.T("t")).
				Value(astcql.F("a"), astcql.Value(1)).
				Value(astcql.F("a"), astcql.Value(2)),
			errPart: "more than once",
		},
		{
			name:    "update without where",
			builder: astcql.Update(astcql.T("t")).Set(astcql.F("a"), astcql.Value(1)),
			errPart: "WHERE",
		},
		{
			name:    "delete without where",
			builder: astcql.Delete(astcql.T("t")),
			errPart: "WHERE",
		},
		{
			name: "conditional counter update",
			builder: astcql.Update(astcql.T("t")).
				Increment(astcql.F("n"), astcql.Value(1)).
				Where(astcql.F("k"), astcql.EQ, astcql.Value(1)).
				IfExists(),
			errPart: "counter",
		},
		{
			name: "if exists with conditions",
			builder: astcql.Delete(astcql.T("t")).
				Where(astcql.F("k"), astcql.EQ, astcql.Value(1)).
				If(astcql.F("a"), astcql.EQ, astcql.Value(1)).
				IfExists(),
			errPart: "IF EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.errPart)
			}
			if _, err := tt.builder.Render(); err == nil {
				t.Error("expected Render to fail")
			}
		})
	}
}

func TestBuilder_StickyError(t *testing.T) {
	b := astcql.Update(astcql.T("t")).
		Value(astcql.F("a"), astcql.Value(1)).
		Set(astcql.F("b"), astcql.Value(2))

	if b.GetError() == nil {
		t.Fatal("expected error")
	}
	if len(b.GetAST().Assignments) != 0 {
		t.Error("calls after an error must not change the AST")
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	astcql.Delete(astcql.T("t")).MustBuild()
}

func TestMutation_Snapshot(t *testing.T) {
	b := astcql.Insert(astcql.T("users")).Value(astcql.F("id"), astcql.Value(1))
	m := b.MustBuild()
	b.Value(astcql.F("name"), astcql.Value("late"))

	if got := m.String(); got != "INSERT INTO users (id) VALUES (1)" {
		t.Errorf("built mutation changed after builder call: %q", got)
	}
}

func TestMutation_Properties(t *testing.T) {
	key := []byte{0xca, 0xfe}
	m := astcql.Insert(astcql.KT("shop", "users")).
		Value(astcql.F("id"), astcql.Value(1)).
		RoutingKey(key).
		MustBuild()

	if m.Operation() != astcql.OpInsert {
		t.Errorf("Operation() = %v", m.Operation())
	}
	if m.Keyspace() != "shop" {
		t.Errorf("Keyspace() = %q", m.Keyspace())
	}
	if !bytes.Equal(m.RoutingKey(), key) {
		t.Errorf("RoutingKey() = %v", m.RoutingKey())
	}
	if m.IsCounterOp() {
		t.Error("insert is not a counter operation")
	}
	if m.HasBindMarkers() {
		t.Error("values are not bind markers")
	}

	marked := astcql.Update(astcql.T("c")).
		Increment(astcql.F("n"), astcql.BindMarker()).
		Where(astcql.F("k"), astcql.EQ, astcql.Value(1)).
		MustBuild()
	if !marked.IsCounterOp() {
		t.Error("expected counter operation")
	}
	if !marked.HasBindMarkers() {
		t.Error("expected bind markers")
	}
	if marked.Keyspace() != "" {
		t.Errorf("Keyspace() = %q, want empty", marked.Keyspace())
	}

	result, err := marked.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if result.CQL != "UPDATE c SET n = n + ? WHERE k = ?" {
		t.Errorf("CQL = %q", result.CQL)
	}
	if len(result.Values) != 2 || result.Values[0] != astcql.Unset || result.Values[1] != 1 {
		t.Errorf("Values = %v", result.Values)
	}
}

func TestMutation_InCounterBatch(t *testing.T) {
	inc := astcql.Update(astcql.T("c")).
		Increment(astcql.F("n"), astcql.Value(1)).
		Where(astcql.F("k"), astcql.EQ, astcql.Value("a")).
		MustBuild()

	b := astcql.NewUnloggedBatch(inc)
	expected := "BEGIN COUNTER BATCH UPDATE c SET n = n + 1 WHERE k = 'a';APPLY BATCH;"
	if got := b.String(); got != expected {
		t.Errorf("Expected CQL:\n%s\nGot:\n%s", expected, got)
	}

	insert := astcql.Insert(astcql.T("t")).Value(astcql.F("k"), astcql.Value(1)).MustBuild()
	if err := b.TryAdd(insert); err == nil {
		t.Error("expected mixed counter error")
	}
}
