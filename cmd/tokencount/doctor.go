package main

import (
	"fmt"

	"github.com/example/go-token-count/internal/doctor"
	"github.com/example/go-token-count/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that every supported encoding can be loaded",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dcfg := doctor.Config{
				LoadEncoding: func(name string) error {
					_, err := tokenizer.LoadEncoding(name)
					return err
				},
				Offline: activeCfg.Tokenizer.Offline,
			}

			result := doctor.Run(dcfg, cmd.OutOrStdout())
			if result.Failed() {
				return fmt.Errorf("doctor found %d problem(s)", len(result.Failures()))
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "all checks passed")
			return err
		},
	}
}
