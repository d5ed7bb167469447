package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/go-token-count/internal/registry"
)

// Selector names the tokenizer to use. Every field is optional, but at least
// one must be set, and any combination must agree on a single encoding.
type Selector struct {
	// Model is a model identifier such as "gpt-4o". When set, the encoding
	// associated with the model in the registry is used.
	Model string
	// Encoding is an encoding identifier such as "o200k_base". When both
	// Model and Encoding are set they must agree.
	Encoding string
	// Handle is a pre-loaded encoding. When set alongside Model or Encoding
	// it must match the encoding they resolve to.
	Handle *Encoding
}

// ErrNoSelector is returned when Resolve is called with an empty Selector.
var ErrNoSelector = errors.New("either a model, an encoding name, or an encoding handle must be provided")

// ErrModelEncodingMismatch is returned when Model and Encoding are both set
// but the registry associates the model with a different encoding.
var ErrModelEncodingMismatch = errors.New("model and encoding name do not agree")

// ErrHandleMismatch is returned when Handle was loaded from a different
// encoding than the one Model or Encoding resolve to.
var ErrHandleMismatch = errors.New("encoding handle does not match the requested encoding")

// Resolve determines the single effective encoding identifier for sel.
//
// Guard checks run in a fixed order: unknown model, unknown encoding,
// model/encoding disagreement, handle disagreement, empty selector. Each
// failure is a distinct sentinel wrapped with detail, so callers can branch
// with errors.Is without parsing messages.
func Resolve(sel Selector) (string, error) {
	name := ""

	if sel.Model != "" {
		derived, err := registry.EncodingForModel(sel.Model)
		if err != nil {
			return "", err
		}
		name = derived
	}

	if sel.Encoding != "" {
		if err := registry.CheckEncoding(sel.Encoding); err != nil {
			return "", err
		}

		if name != "" && name != sel.Encoding {
			return "", fmt.Errorf("%w: model %q uses encoding %q, not %q",
				ErrModelEncodingMismatch, sel.Model, name, sel.Encoding)
		}

		name = sel.Encoding
	}

	if sel.Handle != nil {
		if name != "" && sel.Handle.Name() != name {
			return "", fmt.Errorf("%w: handle is for encoding %q, want %q",
				ErrHandleMismatch, sel.Handle.Name(), name)
		}

		name = sel.Handle.Name()
	}

	if name == "" {
		return "", fmt.Errorf("%w (valid models: %s; valid encodings: %s)",
			ErrNoSelector,
			strings.Join(registry.Models(), ", "),
			strings.Join(registry.Encodings(), ", "))
	}

	return name, nil
}

// ResolveEncoding resolves sel to a ready-to-use handle. A Handle supplied
// in sel is reused as-is once Resolve has confirmed it is consistent;
// otherwise the resolved encoding is loaded.
func ResolveEncoding(sel Selector) (*Encoding, error) {
	name, err := Resolve(sel)
	if err != nil {
		return nil, err
	}

	if sel.Handle != nil {
		return sel.Handle, nil
	}

	return LoadEncoding(name)
}
