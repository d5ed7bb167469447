package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/go-token-count/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var text string
	var file string
	var model string
	var encoding string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize text into BPE token IDs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel := activeSelector(model, encoding)

			tokens, err := gatherTokens(text, file, cmd.InOrStdin(), sel)
			if err != nil {
				return err
			}

			return writeTokenizeOutput(cmd.OutOrStdout(), tokens, sel, asJSON)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to tokenize (if empty and no --file, read from stdin)")
	cmd.Flags().StringVar(&file, "file", "", "Tokenize the whole contents of this file")
	cmd.Flags().StringVar(&model, "model", "", "Model identifier (overrides config)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Encoding identifier (overrides config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of space-separated token IDs")

	return cmd
}

// gatherTokens produces the token sequence for exactly one input source:
// a file, the --text flag, or stdin.
func gatherTokens(text, file string, stdin io.Reader, sel tokenizer.Selector) ([]int, error) {
	if file != "" && text != "" {
		return nil, fmt.Errorf("provide --text or --file, not both")
	}

	if file != "" {
		return tokenizer.TokenizeFile(file, sel)
	}

	if text == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}

	return tokenizer.TokenizeString(text, sel)
}

type tokenizeOutput struct {
	Encoding string `json:"encoding"`
	Count    int    `json:"count"`
	Tokens   []int  `json:"tokens"`
}

func writeTokenizeOutput(w io.Writer, tokens []int, sel tokenizer.Selector, asJSON bool) error {
	if asJSON {
		name, err := tokenizer.Resolve(sel)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(w)
		return enc.Encode(tokenizeOutput{Encoding: name, Count: len(tokens), Tokens: tokens})
	}

	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = strconv.Itoa(tok)
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
