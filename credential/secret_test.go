package credential

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestSecretMasksFormatting(t *testing.T) {
	s := Secret("hunter2")

	for _, verb := range []string{"%v", "%s"} {
		if got := fmt.Sprintf(verb, s); got != "****" {
			t.Errorf("Sprintf(%q) = %q, want masked", verb, got)
		}
	}

	// Secrets embedded in structs must mask through %v too.
	cred := &UsernamePassword{Username: "robot", Password: s}
	if got := fmt.Sprintf("%v", cred); strings.Contains(got, "hunter2") {
		t.Errorf("formatted credential leaks plaintext: %q", got)
	}
}

func TestSecretMasksSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("fetched credential", "passphrase", Secret("open sesame"))

	out := buf.String()
	if strings.Contains(out, "open sesame") {
		t.Errorf("log output leaks plaintext: %q", out)
	}
	if !strings.Contains(out, "****") {
		t.Errorf("log output missing mask: %q", out)
	}
}

func TestSecretPlaintext(t *testing.T) {
	if got := Secret("hunter2").Plaintext(); got != "hunter2" {
		t.Errorf("Plaintext = %q, want %q", got, "hunter2")
	}
	if got := Secret("").Plaintext(); got != "" {
		t.Errorf("Plaintext of empty secret = %q, want empty", got)
	}
}
