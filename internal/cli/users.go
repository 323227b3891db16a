package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

func usersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse and moderate platform accounts",
	}
	cmd.AddCommand(usersListCmd(app))
	cmd.AddCommand(usersActiveCmd(app))
	cmd.AddCommand(usersReportsCmd(app))
	cmd.AddCommand(usersVerifyEmailCmd(app))
	cmd.AddCommand(usersVerifyPhoneCmd(app))
	cmd.AddCommand(usersBlockCmd(app))
	cmd.AddCommand(usersUnblockCmd(app))
	cmd.AddCommand(usersDeleteCmd(app))
	return cmd
}

func usersListCmd(app *App) *cobra.Command {
	var bucket string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts, optionally a single bucket or search match",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			buckets := view.BucketUsers(users, time.Now())
			var selected []models.User
			switch bucket {
			case "", "all":
				selected = buckets.All
			case "new":
				selected = buckets.New
			case "blocked":
				selected = buckets.Blocked
			default:
				return fmt.Errorf("unknown bucket %q (all|new|blocked)", bucket)
			}
			if query != "" {
				selected = view.SearchUsers(selected, query)
			}
			printUsers(selected)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "all, new or blocked")
	cmd.Flags().StringVar(&query, "search", "", "filter by name or email")
	return cmd
}

func printUsers(users []models.User) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			fmt.Sprint(u.UserID),
			orDash(u.FullName),
			orDash(u.Email),
			orDash(u.UserType),
			yesNo(u.EmailVerified),
			yesNo(u.PhoneVerified),
			yesNo(u.Blocked),
			formatDate(u.CreatedAt),
		})
	}
	table([]string{"ID", "NAME", "EMAIL", "TYPE", "EMAIL OK", "PHONE OK", "BLOCKED", "JOINED"}, rows)
}

func usersActiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List accounts by most recent login",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := app.Users.LoadPage(cmd.Context())
			rows := make([][]string, 0, len(page.Active))
			for _, u := range page.Active {
				rows = append(rows, []string{
					fmt.Sprint(u.UserID),
					orDash(u.FullName),
					orDash(u.UserType),
					formatTime(u.LoginTime),
				})
			}
			table([]string{"ID", "NAME", "TYPE", "LAST LOGIN"}, rows)
			return nil
		},
	}
}

func usersReportsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List abuse reports filed against users",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := app.Users.LoadPage(cmd.Context())
			rows := make([][]string, 0, len(page.Reports))
			for _, r := range page.Reports {
				rows = append(rows, []string{
					fmt.Sprint(r.ReportID),
					orDash(r.ReportedName),
					orDash(r.SenderName),
					orDash(r.Status),
					orDash(r.Comments),
					formatDate(r.CreatedAt),
				})
			}
			table([]string{"ID", "REPORTED", "SENDER", "STATUS", "COMMENTS", "FILED"}, rows)
			return nil
		},
	}
}

func userMutationCmd(app *App, use, short string, run func(cmd *cobra.Command, id int64) ([]models.User, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			users, err := run(cmd, id)
			if err != nil {
				return err
			}
			printUsers(view.BucketUsers(users, time.Now()).All)
			return nil
		},
	}
}

func usersVerifyEmailCmd(app *App) *cobra.Command {
	return userMutationCmd(app, "verify-email", "Mark an account's email as verified",
		func(cmd *cobra.Command, id int64) ([]models.User, error) {
			return app.Users.VerifyEmail(cmd.Context(), id)
		})
}

func usersVerifyPhoneCmd(app *App) *cobra.Command {
	return userMutationCmd(app, "verify-phone", "Mark an account's phone as verified",
		func(cmd *cobra.Command, id int64) ([]models.User, error) {
			return app.Users.VerifyPhone(cmd.Context(), id)
		})
}

func usersBlockCmd(app *App) *cobra.Command {
	return userMutationCmd(app, "block", "Block an account from logging in",
		func(cmd *cobra.Command, id int64) ([]models.User, error) {
			return app.Users.Block(cmd.Context(), id)
		})
}

func usersUnblockCmd(app *App) *cobra.Command {
	return userMutationCmd(app, "unblock", "Lift an account block",
		func(cmd *cobra.Command, id int64) ([]models.User, error) {
			return app.Users.Unblock(cmd.Context(), id)
		})
}

func usersDeleteCmd(app *App) *cobra.Command {
	return userMutationCmd(app, "delete", "Permanently delete an account",
		func(cmd *cobra.Command, id int64) ([]models.User, error) {
			return app.Users.Delete(cmd.Context(), id)
		})
}
