package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navkit/pkg/navkit/coordinator"
	"github.com/BrandonKowalski/navkit/pkg/navkit/navigation"
)

// Steps simulate accepts besides links.
const (
	stepBack    = "back"    // PopLast
	stepRoot    = "root"    // PopToRoot
	stepDismiss = "dismiss" // DismissTop
	stepHome    = "home"    // DismissToRoot
)

func (c *CLI) simulateCommand() *cobra.Command {
	var langs []string

	cmd := &cobra.Command{
		Use:   "simulate <url|step>...",
		Short: "Replay deep links against a coordinator",
		Long: `Replay deep links against a fresh coordinator and print the resulting
navigation tree and title trail.

Besides links, these steps drive the coordinator directly:
  back      pop the top stack (PopLast)
  root      pop the top stack to its root (PopToRoot)
  dismiss   dismiss the topmost presentation (DismissTop)
  home      dismiss every presentation (DismissToRoot)`,
		Example: `  navkit simulate -c navkit.toml arcade://library arcade://games/42
  navkit simulate -c navkit.toml arcade://settings dismiss --lang de`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			titler, err := cfg.Titler()
			if err != nil {
				return err
			}
			if len(langs) > 0 {
				titler.SetLanguages(langs...)
			}

			logger := loggerFromContext(cmd.Context())
			opts := append(cfg.CoordinatorOptions(),
				coordinator.WithName(appName),
				coordinator.WithRootView(navigation.Named{Name: "Home"}),
			)
			coord := coordinator.New(opts...)
			cancel := coord.Observe(func(e coordinator.Event) {
				logger.Debug("navigation changed", "event", e.Kind, "depth", e.Depth)
			})
			defer cancel()

			dispatcher := cfg.Dispatcher(coord)
			w := cmd.OutOrStdout()

			for _, arg := range args {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if step(coord, arg) {
					printHandled(w, arg, fmt.Sprintf("depth %d", coord.Depth()))
					continue
				}

				ok, err := dispatcher.HandleString(arg)
				if err != nil {
					return fmt.Errorf("parse link %q: %w", arg, err)
				}
				if !ok {
					printUnhandled(w, arg)
					continue
				}
				printHandled(w, arg, fmt.Sprintf("depth %d", coord.Depth()))
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, styleTitle.Render("Navigation"))
			printSnapshot(w, coord.Snapshot())
			fmt.Fprintln(w)
			fmt.Fprintln(w, styleTitle.Render("Trail"))
			fmt.Fprintf(w, "  %s\n", orDash(strings.Join(titler.Trail(coord), " › ")))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&langs, "lang", nil, "preferred title languages, most preferred first")
	return cmd
}

// step runs a named coordinator step and reports whether arg was one.
func step(c *coordinator.Coordinator, arg string) bool {
	switch arg {
	case stepBack:
		c.PopLast()
	case stepRoot:
		c.PopToRoot()
	case stepDismiss:
		c.DismissTop()
	case stepHome:
		c.DismissToRoot()
	default:
		return false
	}
	return true
}
