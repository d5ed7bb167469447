package main

import (
	"log/slog"
	"os"

	"github.com/example/go-token-count/internal/config"
	"github.com/example/go-token-count/internal/tokenizer"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "tokencount",
		Short: "Tokenize text and count tokens with OpenAI tiktoken encodings",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			if loaded.Tokenizer.Offline {
				tokenizer.UseOfflineLoader()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newCountCmd())
	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newModelsCmd())
	cmd.AddCommand(newEncodingsCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// activeSelector builds the tokenizer selector for a command, letting the
// per-command flags override the configured defaults.
func activeSelector(modelFlag, encodingFlag string) tokenizer.Selector {
	sel := tokenizer.Selector{
		Model:    activeCfg.Tokenizer.Model,
		Encoding: activeCfg.Tokenizer.Encoding,
	}
	if modelFlag != "" {
		sel.Model = modelFlag
	}
	if encodingFlag != "" {
		sel.Encoding = encodingFlag
	}
	return sel
}
