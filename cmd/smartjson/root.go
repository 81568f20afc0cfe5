package main

import (
	"io"

	"charm.land/smartjson"
	"charm.land/smartjson/config"
	"github.com/charmbracelet/log/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	configPath string
	logLevel   string
	maxAttempt int

	cfg    *config.Config
	logger *log.Logger
	parser *smartjson.Parser
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "smartjson",
		Short: "Parse JSON typed by hand, fixing missing quotes, colons and braces",
		Long: `smartjson parses JSON-like text that may be missing quotes around keys,
colons, or the surrounding braces, or that uses = instead of :.

When the text is not valid JSON a corrected document is proposed and only
printed once you accept it. Missing [ or ] are never guessed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to a YAML or JSON config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: off, debug, info, warn, error")
	root.PersistentFlags().IntVar(&a.maxAttempt, "max-attempt", 0, "number of auto correction passes")

	root.AddCommand(
		newParseCmd(a),
		newTokensCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnvFiles(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("max-attempt") {
		cfg.AutoCorrection.MaxAttempt = a.maxAttempt
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.parser = smartjson.New(append(cfg.ParserOptions(), smartjson.WithLogger(logger))...)
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) (*log.Logger, error) {
	if cfg.Silent() {
		return log.New(io.Discard), nil
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "smartjson",
		Level:  level,
	})
	return logger.With("session", uuid.NewString()), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "smartjson "+smartjson.Version+"\n")
			return err
		},
	}
}
