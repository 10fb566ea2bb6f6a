package credbind

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid binding declaration: a missing
// credential identifier, empty or duplicate variable names, or a name
// shadowing one of the fixed git/ssh variables. It is always raised
// before any credential fetch or file I/O.
type ConfigError struct {
	Binding string // binding kind the declaration was for
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s binding: %s", e.Binding, e.Reason)
}

// IsConfigError reports whether err is a binding configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// firstDuplicate returns the first name appearing more than once, or "".
func firstDuplicate(names []string) string {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return name
		}
		seen[name] = struct{}{}
	}
	return ""
}
