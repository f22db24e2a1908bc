// Package testing provides test utilities for astcql.
package testing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/astcql"
	"github.com/zoobzio/dbml"
)

// TestInstance creates an ASTCQL instance for testing.
// Includes users, carts, page_views and events tables.
func TestInstance(t *testing.T) *astcql.ASTCQL {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("name", "text"))
	users.AddColumn(dbml.NewColumn("email", "text"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	carts := dbml.NewTable("carts")
	carts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	carts.AddColumn(dbml.NewColumn("item", "text"))
	carts.AddColumn(dbml.NewColumn("quantity", "int"))
	project.AddTable(carts)

	// Counter table
	views := dbml.NewTable("page_views")
	views.AddColumn(dbml.NewColumn("page", "text"))
	views.AddColumn(dbml.NewColumn("hits", "counter"))
	project.AddTable(views)

	events := dbml.NewTable("events")
	events.AddColumn(dbml.NewColumn("day", "text"))
	events.AddColumn(dbml.NewColumn("seq", "int"))
	events.AddColumn(dbml.NewColumn("payload", "blob"))
	project.AddTable(events)

	instance, err := astcql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}
	return instance
}

// AssertCQL compares expected and actual CQL, reporting detailed differences.
func AssertCQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("CQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertValues checks that collected values match expected values in order.
func AssertValues(t *testing.T, expected, actual []any) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Value count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if !reflect.DeepEqual(expected[i], actual[i]) {
			t.Errorf("Value %d mismatch: expected %v, got %v", i, expected[i], actual[i])
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
