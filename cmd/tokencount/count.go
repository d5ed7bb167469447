package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/go-token-count/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var text string
	var file string
	var model string
	var encoding string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count tokens in text or a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel := activeSelector(model, encoding)

			tokens, err := gatherTokens(text, file, cmd.InOrStdin(), sel)
			if err != nil {
				return err
			}

			return writeCountOutput(cmd.OutOrStdout(), len(tokens), sel, asJSON)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to count (if empty and no --file, read from stdin)")
	cmd.Flags().StringVar(&file, "file", "", "Count the whole contents of this file")
	cmd.Flags().StringVar(&model, "model", "", "Model identifier (overrides config)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Encoding identifier (overrides config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a bare number")

	return cmd
}

type countOutput struct {
	Encoding string `json:"encoding"`
	Count    int    `json:"count"`
}

func writeCountOutput(w io.Writer, count int, sel tokenizer.Selector, asJSON bool) error {
	if asJSON {
		name, err := tokenizer.Resolve(sel)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(w)
		return enc.Encode(countOutput{Encoding: name, Count: count})
	}

	_, err := fmt.Fprintln(w, count)
	return err
}
