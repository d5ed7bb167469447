package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/go-token-count/internal/registry"
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported models and their encodings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			for _, model := range registry.Models() {
				enc, err := registry.EncodingForModel(model)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(w, "%s\t%s\n", model, enc)
			}

			return w.Flush()
		},
	}
}

func newEncodingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List supported encoding names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range registry.Encodings() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), name)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
