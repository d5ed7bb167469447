package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	LogLevel  string          `mapstructure:"log_level"`
}

type TokenizerConfig struct {
	// Model is the default model identifier used when a command is run
	// without --model.
	Model string `mapstructure:"model"`
	// Encoding is the default encoding identifier used when a command is
	// run without --encoding.
	Encoding string `mapstructure:"encoding"`
	// Offline loads BPE vocabularies from embedded assets instead of the
	// network-backed cache.
	Offline bool `mapstructure:"offline"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			Model:    "",
			Encoding: "",
			Offline:  false,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("tokenizer-model", defaults.Tokenizer.Model, "Default model identifier (e.g. gpt-4o)")
	fs.String("tokenizer-encoding", defaults.Tokenizer.Encoding, "Default encoding identifier (e.g. o200k_base)")
	fs.Bool("tokenizer-offline", defaults.Tokenizer.Offline, "Load BPE vocabularies from embedded assets, never the network")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("TOKENCOUNT")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("tokencount")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("tokenizer.model", c.Tokenizer.Model)
	v.SetDefault("tokenizer.encoding", c.Tokenizer.Encoding)
	v.SetDefault("tokenizer.offline", c.Tokenizer.Offline)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("tokenizer.model", "tokenizer-model")
	v.RegisterAlias("tokenizer.encoding", "tokenizer-encoding")
	v.RegisterAlias("tokenizer.offline", "tokenizer-offline")
	v.RegisterAlias("log_level", "log-level")
}

// ParseLogLevel maps a config log level string onto a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
