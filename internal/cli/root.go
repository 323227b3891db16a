// Package cli wires the admin commands. Every command renders the same
// collections the dashboard pages show; mutations go through the service
// layer so confirmation, audit and notifications behave identically
// everywhere.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tikang-admin/internal/api"
	"tikang-admin/internal/audit"
	"tikang-admin/internal/config"
	"tikang-admin/internal/export"
	"tikang-admin/internal/service"
	"tikang-admin/internal/session"
)

// App carries everything the commands need. main builds one and hands it to
// Execute.
type App struct {
	Config  *config.Config
	Logger  *zerolog.Logger
	Session *session.Store
	API     *api.Client
	Core    *service.Core

	Bookings   *service.BookingService
	Properties *service.PropertyService
	Users      *service.UserService
	Wallet     *service.WalletService
	Account    *service.AccountService

	Excel    *export.ExcelWriter
	AuditLog *audit.Log
}

const annotationPublic = "public"

func markPublic(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationPublic] = "true"
	return cmd
}

// NewRootCommand assembles the command tree.
func NewRootCommand(app *App) *cobra.Command {
	var assumeYes bool

	root := &cobra.Command{
		Use:           "tikang-admin",
		Short:         "Admin console for the Tikang booking platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if assumeYes {
				app.Core.Confirm = service.AutoConfirm
			}
			if cmd.Annotations[annotationPublic] == "true" {
				return nil
			}
			// Same gate the dashboard pages had: verify the stored token
			// against the identity endpoint before running anything.
			if !app.Session.FetchUser(cmd.Context()) {
				return fmt.Errorf("not logged in, run `tikang-admin login` first")
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmation prompts")

	root.AddCommand(markPublic(loginCmd(app)))
	root.AddCommand(logoutCmd(app))
	root.AddCommand(whoamiCmd(app))
	root.AddCommand(dashboardCmd(app))
	root.AddCommand(bookingsCmd(app))
	root.AddCommand(propertiesCmd(app))
	root.AddCommand(usersCmd(app))
	root.AddCommand(transactionsCmd(app))
	root.AddCommand(walletCmd(app))
	root.AddCommand(accountCmd(app))
	root.AddCommand(exportCmd(app))
	root.AddCommand(auditCmd(app))
	return root
}

// Execute runs the command tree and reports the exit code.
func Execute(ctx context.Context, app *App) int {
	root := NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
