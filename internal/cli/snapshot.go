package cli

import (
	"roster-cli/internal/model"
	"roster-cli/internal/roster"

	"github.com/spf13/cobra"
)

type snapshotResult struct {
	Entries []model.Entry `json:"entries"`
	Payload string        `json:"payload"`
	Added   int           `json:"added"`
	Ignored int           `json:"ignored"`
}

func newSnapshotCmd(app *App) *cobra.Command {
	var adds []string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Seed a list, add names, and print the hand-off payload",
		Long: `Runs the entry screen's operations without a terminal UI: every --add is
typed into the draft and committed, in order. Blank names are ignored the same
way the add button ignores them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := roster.New(app.seed())
			res := snapshotResult{}
			for _, name := range adds {
				st.UpdateDraft(name)
				if st.CommitDraft() {
					res.Added++
				} else {
					res.Ignored++
				}
			}
			res.Entries = st.Entries()
			res.Payload = st.Snapshot()
			app.log.Debug("snapshot", "len", len(res.Entries), "added", res.Added)
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringArrayVar(&adds, "add", nil, "Name to add (repeatable)")

	return cmd
}
