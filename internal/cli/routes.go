package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navkit/pkg/navkit/deeplink"
)

func (c *CLI) routesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the deep-link routes of a config",
		Long: `List every [[route]] entry of a navkit config in match order.

The first route matching a link wins, so order matters.`,
		Example: `  navkit routes -c navkit.toml
  NAVKIT_CONFIG=navkit.toml navkit routes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			printRoutes(cmd, cfg.Routes)
			return nil
		},
	}
}

func printRoutes(cmd *cobra.Command, routes []deeplink.Route) {
	w := cmd.OutOrStdout()
	if len(routes) == 0 {
		fmt.Fprintln(w, styleDim.Render("no routes"))
		return
	}

	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%d routes", len(routes))))
	for i, r := range routes {
		nt, err := r.NavigationType()
		shown := nt.String()
		if err != nil {
			shown = styleWarning.Render(err.Error())
		}
		fmt.Fprintf(w, "  %2d. %-16s %s %s %s\n", i+1, r.Name, styleLink.Render(pattern(r)), iconArrow, shown)
	}
}

// pattern renders the link shape a route matches, with "*" for wildcards.
func pattern(r deeplink.Route) string {
	var b strings.Builder
	b.WriteString(orStar(r.Scheme))
	b.WriteString("://")
	b.WriteString(orStar(r.Host))
	if r.Path == "" {
		b.WriteString("/*")
		return b.String()
	}
	if !strings.HasPrefix(r.Path, "/") {
		b.WriteByte('/')
	}
	b.WriteString(r.Path)
	return b.String()
}

func orStar(s string) string {
	if s == "" {
		return "*"
	}
	return s
}
