package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktokenloader "github.com/pkoukk/tiktoken-go-loader"

	"github.com/example/go-token-count/internal/registry"
)

// Encoding is a loaded, ready-to-use tiktoken tokenizer for one encoding
// identifier. Equality of two handles is equality of their identifiers.
type Encoding struct {
	name string
	enc  *tiktoken.Tiktoken
}

var offlineOnce sync.Once

// UseOfflineLoader switches tiktoken to its embedded vocabulary loader so
// encodings load without touching the network or the on-disk cache.
// The switch is process-wide and sticky; calling it again is a no-op.
func UseOfflineLoader() {
	offlineOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktokenloader.NewOfflineLoader())
	})
}

// LoadEncoding validates name against the supported set and loads the
// corresponding tiktoken encoding.
func LoadEncoding(name string) (*Encoding, error) {
	if err := registry.CheckEncoding(name); err != nil {
		return nil, err
	}

	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", name, err)
	}

	return &Encoding{name: name, enc: enc}, nil
}

// Name returns the encoding identifier this handle was loaded from.
func (e *Encoding) Name() string { return e.name }

// Encode converts text into an ordered sequence of BPE token IDs.
func (e *Encoding) Encode(text string) []int {
	return e.enc.Encode(text, nil, nil)
}

// Decode converts token IDs back into text.
func (e *Encoding) Decode(tokens []int) string {
	return e.enc.Decode(tokens)
}

// Count returns the number of tokens Encode produces for text.
func (e *Encoding) Count(text string) int {
	return len(e.Encode(text))
}
