package astcql

import (
	"fmt"

	"github.com/zoobzio/astcql/internal/types"
)

// TryF creates a validated column reference, returning an error if invalid.
func TryF(name string) (types.Field, error) {
	if err := validateIdentifier(name); err != nil {
		return types.Field{}, fmt.Errorf("invalid field: %w", err)
	}
	return types.Field{Name: name}, nil
}

// F creates a validated column reference.
func F(name string) types.Field {
	f, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// validateIdentifier accepts a letter followed by letters, digits or
// underscores. Mixed-case names are kept and quoted at render time.
func validateIdentifier(s string) error {
	if s == "" {
		return NewInvalidArgumentError("identifier cannot be empty")
	}
	first := s[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return NewInvalidArgumentError(fmt.Sprintf("identifier %q must start with a letter", s))
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return NewInvalidArgumentError(fmt.Sprintf("identifier %q contains invalid character %q", s, ch))
		}
	}
	return nil
}
