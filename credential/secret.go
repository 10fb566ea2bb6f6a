package credential

import "log/slog"

// mask replaces secret values anywhere a Secret is formatted.
const mask = "****"

// Secret is a string whose printed form is masked. Call Plaintext at the
// single point the real value is needed; everything that formats the
// value through fmt or slog sees the mask instead.
type Secret string

// String implements fmt.Stringer.
func (Secret) String() string { return mask }

// LogValue implements slog.LogValuer so structured logs never carry the
// plaintext.
func (Secret) LogValue() slog.Value { return slog.StringValue(mask) }

// Plaintext reveals the secret value.
func (s Secret) Plaintext() string { return string(s) }
