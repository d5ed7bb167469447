// Package doctor provides environment preflight checks for tokencount.
package doctor

import (
	"fmt"
	"io"

	"github.com/example/go-token-count/internal/registry"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// LoadFunc loads the named encoding and returns an error if it is
// unavailable in the current environment.
type LoadFunc func(name string) error

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// LoadEncoding loads one encoding by name. Each supported encoding is
	// checked through it.
	LoadEncoding LoadFunc
	// Encodings is the list of encoding identifiers to check. When empty,
	// the full supported set is used.
	Encodings []string
	// Offline reports whether the embedded vocabulary loader is active,
	// for the summary line only.
	Offline bool
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	names := cfg.Encodings
	if len(names) == 0 {
		names = registry.Encodings()
	}

	source := "network-backed cache"
	if cfg.Offline {
		source = "embedded assets"
	}
	fmt.Fprintf(w, "vocabulary source: %s\n", source)

	// ---- registry consistency --------------------------------------------
	for _, model := range registry.Models() {
		enc, err := registry.EncodingForModel(model)
		if err != nil {
			res.fail(fmt.Sprintf("registry entry %q: %v", model, err))
			fmt.Fprintf(w, "%s registry entry %s: %v\n", FailMark, model, err)

			continue
		}

		if !registry.ValidEncoding(enc) {
			res.fail(fmt.Sprintf("registry entry %q: maps to unknown encoding %q", model, enc))
			fmt.Fprintf(w, "%s registry entry %s: maps to unknown encoding %s\n", FailMark, model, enc)
		}
	}
	if !res.Failed() {
		fmt.Fprintf(w, "%s registry: %d models map onto known encodings\n", PassMark, len(registry.Models()))
	}

	// ---- encoding availability -------------------------------------------
	for _, name := range names {
		if cfg.LoadEncoding == nil {
			res.fail(fmt.Sprintf("encoding %q: no loader configured", name))
			fmt.Fprintf(w, "%s encoding %s: no loader configured\n", FailMark, name)

			continue
		}

		if err := cfg.LoadEncoding(name); err != nil {
			res.fail(fmt.Sprintf("encoding %q: %v", name, err))
			fmt.Fprintf(w, "%s encoding %s: %v\n", FailMark, name, err)
		} else {
			fmt.Fprintf(w, "%s encoding %s: loads\n", PassMark, name)
		}
	}

	return res
}
