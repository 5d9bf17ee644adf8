package cli

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navkit/pkg/navkit/deeplink"
)

// ErrNoRoute is returned by open when no configured route matches the link.
var ErrNoRoute = errors.New("no matching route")

func (c *CLI) openCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Show which route a deep link resolves to",
		Long: `Resolve a deep link against the config's route table without navigating.

Prints the first matching route, its bound path parameters and how its
view would be shown. Exits non-zero when nothing matches.`,
		Example: `  navkit open -c navkit.toml arcade://games/42
  navkit open -c navkit.toml 'arcade://search/roms/snes?q=mario'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			u, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse link: %w", err)
			}

			route, params, ok := resolve(cfg.Routes, u)
			w := cmd.OutOrStdout()
			if !ok {
				printUnhandled(w, args[0])
				return fmt.Errorf("%s: %w", args[0], ErrNoRoute)
			}

			nt, err := route.NavigationType()
			if err != nil {
				return err
			}
			printHandled(w, args[0], fmt.Sprintf("%s (%s)", route.Name, nt))
			fmt.Fprintf(w, "  %s %s\n", styleDim.Render("view:  "), orDash(route.View))
			fmt.Fprintf(w, "  %s %s\n", styleDim.Render("params:"), formatParams(params))
			return nil
		},
	}
}

// resolve returns the first route matching u, as the dispatcher would pick it.
func resolve(routes []deeplink.Route, u *url.URL) (deeplink.Route, deeplink.Params, bool) {
	for _, r := range routes {
		if params, ok := r.Match(u); ok {
			return r, params, true
		}
	}
	return deeplink.Route{}, nil, false
}

func formatParams(p deeplink.Params) string {
	if len(p) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+p[k])
	}
	return strings.Join(parts, " ")
}
