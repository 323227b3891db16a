package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func auditCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent admin actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.AuditLog == nil {
				return fmt.Errorf("audit log is disabled in the configuration")
			}
			entries, err := app.AuditLog.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				target := orDash(e.Target)
				if e.TargetID != 0 {
					target = fmt.Sprintf("%s %d", e.Target, e.TargetID)
				}
				rows = append(rows, []string{
					e.At.Format("2006-01-02 15:04:05"),
					orDash(e.Actor),
					e.Action,
					target,
					e.Outcome,
					orDash(e.Message),
				})
			}
			table([]string{"TIME", "ACTOR", "ACTION", "TARGET", "OUTCOME", "MESSAGE"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries to show")
	return cmd
}
