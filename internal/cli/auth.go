package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loginCmd(app *App) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with admin credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("Email: ")
				reader := bufio.NewReader(os.Stdin)
				value, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(value)
			}
			if password == "" {
				fmt.Print("Password: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return err
				}
				password = strings.TrimSpace(string(raw))
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			if err := app.Session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			if admin := app.Session.Admin(); admin != nil {
				fmt.Printf("Logged in as %s (%s)\n", admin.FullName, admin.Email)
			} else {
				fmt.Println("Logged in.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return cmd
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin := app.Session.Admin()
			if admin == nil {
				// The session gate passed, so the token is valid but the
				// profile was never fetched.
				if !app.Session.FetchUser(cmd.Context()) {
					return fmt.Errorf("could not load admin profile")
				}
				admin = app.Session.Admin()
			}
			table([]string{"FIELD", "VALUE"}, [][]string{
				{"Name", admin.FullName},
				{"Email", admin.Email},
				{"User ID", fmt.Sprint(admin.UserID)},
				{"Tikang cash", formatMoney(admin.TikangCash)},
			})
			return nil
		},
	}
}
