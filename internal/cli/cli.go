// Package cli implements the navkit command-line tool.
//
// The tool inspects navkit TOML configs and replays deep links against a
// coordinator, which is handy when designing a route table:
//
//	navkit routes -c navkit.toml
//	navkit open -c navkit.toml arcade://games/42
//	navkit simulate -c navkit.toml arcade://library arcade://settings back dismiss
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navkit/pkg/navkit"
)

const appName = "navkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	out     io.Writer
	verbose bool
}

// New creates a CLI writing command output to out and logs to logs.
func New(out, logs io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logs, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Inspect navkit configs and replay deep links",
		Long:         `navkit loads a navkit TOML config, lists its deep-link routes and replays links against a coordinator to show the resulting navigation state.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetOut(c.out)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringP("config", "c", "", "path to a navkit TOML config (default $NAVKIT_CONFIG)")

	root.AddCommand(c.routesCommand())
	root.AddCommand(c.openCommand())
	root.AddCommand(c.simulateCommand())

	return root
}

// loadConfig reads the config named by --config and applies its [log]
// section. --verbose also raises navkit's own diagnostics to debug.
func (c *CLI) loadConfig(cmd *cobra.Command) (*navkit.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	cfg, err := navkit.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d routes", len(cfg.Routes)))

	if err := navkit.Init(cfg.Options()); err != nil {
		logger.Warn("logging to stderr only", "err", err)
	}
	if c.verbose {
		navkit.SetLogLevel(slog.LevelDebug)
		navkit.SetInternalLogLevel(slog.LevelDebug)
	}
	return cfg, nil
}
