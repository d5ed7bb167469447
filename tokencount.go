// Package tokencount resolves OpenAI model or encoding names to a concrete
// tiktoken tokenizer and provides helpers to tokenize strings and files and
// to count tokens.
//
// This package wraps the internal implementation and provides a clean
// public API. The byte-pair-encoding work itself is delegated to
// github.com/pkoukk/tiktoken-go.
//
// Example usage:
//
//	import "github.com/example/go-token-count"
//
//	// Count tokens for a model.
//	n, err := tokencount.CountString("hello world", tokencount.Selector{Model: "gpt-4o"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reuse a loaded encoding across calls.
//	enc, err := tokencount.GetEncoding(tokencount.Selector{Encoding: "cl100k_base"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tokens := enc.Encode("hello world")
package tokencount

import (
	"github.com/example/go-token-count/internal/registry"
	"github.com/example/go-token-count/internal/tokenizer"
)

// Encoding is a loaded, ready-to-use tokenizer handle.
type Encoding = tokenizer.Encoding

// Selector names the tokenizer to use; see the field docs for the
// consistency rules.
type Selector = tokenizer.Selector

// Sentinel errors for every way a Selector can fail to resolve. Inspect
// with errors.Is.
var (
	ErrUnknownModel          = registry.ErrUnknownModel
	ErrUnknownEncoding       = registry.ErrUnknownEncoding
	ErrModelEncodingMismatch = tokenizer.ErrModelEncodingMismatch
	ErrHandleMismatch        = tokenizer.ErrHandleMismatch
	ErrNoSelector            = tokenizer.ErrNoSelector
)

// GetEncoding resolves sel and returns a ready-to-use encoding handle.
func GetEncoding(sel Selector) (*Encoding, error) {
	return tokenizer.ResolveEncoding(sel)
}

// ResolveEncodingName resolves sel to the single effective encoding
// identifier without loading a vocabulary.
func ResolveEncodingName(sel Selector) (string, error) {
	return tokenizer.Resolve(sel)
}

// TokenizeString tokenizes text with the encoding sel resolves to.
func TokenizeString(text string, sel Selector) ([]int, error) {
	return tokenizer.TokenizeString(text, sel)
}

// CountString returns the number of tokens in text.
func CountString(text string, sel Selector) (int, error) {
	return tokenizer.CountString(text, sel)
}

// TokenizeFile reads the whole file at path and tokenizes its contents.
func TokenizeFile(path string, sel Selector) ([]int, error) {
	return tokenizer.TokenizeFile(path, sel)
}

// CountFile returns the number of tokens in the file at path.
func CountFile(path string, sel Selector) (int, error) {
	return tokenizer.CountFile(path, sel)
}

// DecodeTokens converts token IDs back into text with the encoding sel
// resolves to.
func DecodeTokens(tokens []int, sel Selector) (string, error) {
	return tokenizer.DecodeTokens(tokens, sel)
}

// EncodingForModel returns the encoding identifier associated with model.
func EncodingForModel(model string) (string, error) {
	return registry.EncodingForModel(model)
}

// Models returns the supported model identifiers in sorted order.
func Models() []string { return registry.Models() }

// Encodings returns the supported encoding identifiers, newest first.
func Encodings() []string { return registry.Encodings() }

// UseOfflineLoader switches tiktoken to its embedded vocabulary loader so
// encodings load without network access. Process-wide and sticky.
func UseOfflineLoader() { tokenizer.UseOfflineLoader() }
