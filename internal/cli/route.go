package cli

import (
	"roster-cli/internal/nav"

	"github.com/spf13/cobra"
)

type routeResult struct {
	Route    string `json:"route"`
	Screen   string `json:"screen"`
	ListData string `json:"listData"`
}

func newRouteCmd(app *App) *cobra.Command {
	var (
		payload string
		raw     string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Encode a payload as the result route, or resolve a raw route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("payload") {
				raw = nav.ResultRoute(payload)
			}
			r := nav.ParseRoute(raw)
			if r.Screen == nav.ScreenUnknown {
				return errUnknownRoute(raw)
			}
			return writeOut(cmd, app, routeResult{
				Route:    raw,
				Screen:   r.Screen.String(),
				ListData: r.Payload(),
			})
		},
	}

	cmd.Flags().StringVar(&payload, "payload", "", "Payload to encode into the result route")
	cmd.Flags().StringVar(&raw, "raw", "", "Raw route to resolve (e.g. \"result/?listData=...\")")
	cmd.MarkFlagsMutuallyExclusive("payload", "raw")
	cmd.MarkFlagsOneRequired("payload", "raw")

	return cmd
}
