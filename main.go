package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"library-catalog/config"
	"library-catalog/library"
	"library-catalog/logging"
	"library-catalog/session"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Streams are injected so the command can be run
// against buffers.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		seedFile   string
		noClear    bool
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:          "library-catalog",
		Short:        "Interactive in-memory library catalog",
		Long:         "Manage an in-memory book catalog from a numbered menu: add, search, issue, return, list and delete books. Nothing is saved on exit.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadEnvFiles()
			if configPath == "" {
				configPath = os.Getenv(config.EnvConfigPath)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.SeedFile = seedFile
			}
			if flags.Changed("no-clear") {
				cfg.ClearScreen = !noClear
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
			slog.SetDefault(logger)

			manager := library.NewLibraryManager(logger)
			if cfg.SeedFile != "" {
				n, err := manager.ImportSeedFile(cfg.SeedFile)
				if err != nil {
					return fmt.Errorf("import seed: %w", err)
				}
				logger.Debug("seed loaded", "path", cfg.SeedFile, "books", n)
			}

			screen := session.NewScreen(stdout, cfg.ClearScreen)
			s := session.New(stdin, stdout, manager, screen, logger)
			return s.Run(cmd.Context())
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file (env "+config.EnvConfigPath+")")
	flags.StringVar(&seedFile, "seed", "", "YAML file of books to load at startup")
	flags.BoolVar(&noClear, "no-clear", false, "do not pause and clear the screen between commands")
	flags.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "log format: text or json")

	return cmd
}
