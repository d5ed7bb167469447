package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/go-token-count/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var model string
	var encoding string

	cmd := &cobra.Command{
		Use:   "decode [token-ids...]",
		Short: "Decode BPE token IDs back into text",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := activeSelector(model, encoding)

			tokens, err := gatherTokenIDs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			text, err := tokenizer.DecodeTokens(tokens, sel)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Model identifier (overrides config)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Encoding identifier (overrides config)")

	return cmd
}

// gatherTokenIDs parses token IDs from the argument list, or from
// whitespace-separated stdin when no arguments are given.
func gatherTokenIDs(args []string, stdin io.Reader) ([]int, error) {
	fields := args
	if len(fields) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		fields = strings.Fields(string(b))
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("either pass token IDs as arguments or pipe them on stdin")
	}

	tokens := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid token ID %q: %w", f, err)
		}
		tokens = append(tokens, id)
	}

	return tokens, nil
}
