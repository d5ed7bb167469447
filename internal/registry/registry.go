// Package registry defines the closed sets of supported model identifiers
// and encoding identifiers, and the fixed mapping between them.
//
// The mapping follows OpenAI's published model/encoding association:
// https://cookbook.openai.com/examples/how_to_count_tokens_with_tiktoken
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Canonical encoding identifiers, newest vocabulary first.
const (
	EncodingO200kBase  = "o200k_base"
	EncodingCL100kBase = "cl100k_base"
	EncodingP50kBase   = "p50k_base"
	EncodingR50kBase   = "r50k_base"
)

// ErrUnknownModel is returned when a model identifier is not in the
// supported set.
var ErrUnknownModel = errors.New("unknown model")

// ErrUnknownEncoding is returned when an encoding identifier is not in the
// supported set.
var ErrUnknownEncoding = errors.New("unknown encoding")

// modelEncodings maps each supported model identifier to its encoding.
// The two catch-all entries ("Codex models", "GPT-3 models like davinci")
// are kept verbatim from the upstream table.
var modelEncodings = map[string]string{
	"gpt-4o":                    EncodingO200kBase,
	"gpt-4o-mini":               EncodingO200kBase,
	"gpt-4-turbo":               EncodingCL100kBase,
	"gpt-4":                     EncodingCL100kBase,
	"gpt-3.5-turbo":             EncodingCL100kBase,
	"text-embedding-ada-002":    EncodingCL100kBase,
	"text-embedding-3-small":    EncodingCL100kBase,
	"text-embedding-3-large":    EncodingCL100kBase,
	"Codex models":              EncodingP50kBase,
	"text-davinci-002":          EncodingP50kBase,
	"text-davinci-003":          EncodingP50kBase,
	"GPT-3 models like davinci": EncodingR50kBase,
}

// encodings lists the supported encoding identifiers in display order.
var encodings = []string{
	EncodingO200kBase,
	EncodingCL100kBase,
	EncodingP50kBase,
	EncodingR50kBase,
}

// EncodingForModel returns the encoding identifier associated with model.
// The error wraps ErrUnknownModel and enumerates the supported models.
func EncodingForModel(model string) (string, error) {
	enc, ok := modelEncodings[model]
	if !ok {
		return "", fmt.Errorf("%w %q (valid models: %s)", ErrUnknownModel, model, strings.Join(Models(), ", "))
	}
	return enc, nil
}

// CheckEncoding validates that name is a supported encoding identifier.
// The error wraps ErrUnknownEncoding and enumerates the supported encodings.
func CheckEncoding(name string) error {
	if !ValidEncoding(name) {
		return fmt.Errorf("%w %q (valid encodings: %s)", ErrUnknownEncoding, name, strings.Join(encodings, ", "))
	}
	return nil
}

// ValidEncoding reports whether name is a supported encoding identifier.
func ValidEncoding(name string) bool {
	for _, e := range encodings {
		if e == name {
			return true
		}
	}
	return false
}

// ValidModel reports whether model is a supported model identifier.
func ValidModel(model string) bool {
	_, ok := modelEncodings[model]
	return ok
}

// Models returns the supported model identifiers in sorted order.
func Models() []string {
	out := make([]string, 0, len(modelEncodings))
	for m := range modelEncodings {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Encodings returns the supported encoding identifiers, newest first.
func Encodings() []string {
	return append([]string(nil), encodings...)
}
