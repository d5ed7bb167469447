// Package testutil provides shared skip helpers for environment-dependent
// tests.
//
// Each helper calls t.Skip with a clear human-readable reason when the named
// prerequisite is absent, so tests remain runnable in partial environments
// (for example, an offline loader build that lacks a newer vocabulary)
// without failing noisily.
package testutil

import (
	"testing"

	"github.com/example/go-token-count/internal/tokenizer"
)

// RequireEncoding skips the test if the named encoding cannot be loaded
// through the embedded offline loader.
func RequireEncoding(tb testing.TB, name string) *tokenizer.Encoding {
	tb.Helper()

	tokenizer.UseOfflineLoader()

	enc, err := tokenizer.LoadEncoding(name)
	if err != nil {
		tb.Skipf("encoding %q not available offline: %v", name, err)
	}

	return enc
}
