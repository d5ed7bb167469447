// Package tokenizer resolves model and encoding selectors to concrete
// tiktoken encodings and provides string and file tokenization helpers.
//
// The byte-pair-encoding algorithm and its vocabularies belong entirely to
// github.com/pkoukk/tiktoken-go; this package only validates selector
// consistency and delegates.
package tokenizer

import (
	"fmt"
	"os"
)

// TokenizeString tokenizes text with the encoding sel resolves to.
func TokenizeString(text string, sel Selector) ([]int, error) {
	enc, err := ResolveEncoding(sel)
	if err != nil {
		return nil, err
	}

	return enc.Encode(text), nil
}

// CountString returns the number of tokens in text, which is always the
// length of the sequence TokenizeString produces for the same inputs.
func CountString(text string, sel Selector) (int, error) {
	tokens, err := TokenizeString(text, sel)
	if err != nil {
		return 0, err
	}

	return len(tokens), nil
}

// TokenizeFile reads the whole file at path as UTF-8 text and tokenizes it.
// There is no streaming; the file is read in one piece.
func TokenizeFile(path string, sel Selector) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return TokenizeString(string(data), sel)
}

// CountFile returns the number of tokens in the file at path.
func CountFile(path string, sel Selector) (int, error) {
	tokens, err := TokenizeFile(path, sel)
	if err != nil {
		return 0, err
	}

	return len(tokens), nil
}

// DecodeTokens converts token IDs back into text with the encoding sel
// resolves to.
func DecodeTokens(tokens []int, sel Selector) (string, error) {
	enc, err := ResolveEncoding(sel)
	if err != nil {
		return "", err
	}

	return enc.Decode(tokens), nil
}
