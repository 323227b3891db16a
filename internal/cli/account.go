package cli

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tikang-admin/internal/api"
	"tikang-admin/internal/models"
)

func accountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the admin profile and platform branding",
	}
	cmd.AddCommand(accountChangePasswordCmd(app))
	cmd.AddCommand(accountChangeLogoCmd(app))
	cmd.AddCommand(accountChangeBannersCmd(app))
	cmd.AddCommand(accountChangeGCashQRCmd(app))
	return cmd
}

func readFilePart(field, path string) (api.FilePart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return api.FilePart{}, err
	}
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return api.FilePart{
		Field:       field,
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func accountChangePasswordCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Set a new admin password",
		RunE: func(cmd *cobra.Command, args []string) error {
			newPassword, err := readSecret("New password: ")
			if err != nil {
				return err
			}
			confirm, err := readSecret("Confirm password: ")
			if err != nil {
				return err
			}
			return app.Account.ChangePassword(cmd.Context(), newPassword, confirm)
		},
	}
}

func accountChangeLogoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "change-logo <file.png>",
		Short: "Replace the platform logo (PNG only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logo, err := readFilePart("logo", args[0])
			if err != nil {
				return err
			}
			return app.Account.ChangeLogo(cmd.Context(), logo)
		},
	}
}

func accountChangeBannersCmd(app *App) *cobra.Command {
	slots := make([]string, models.BannerSlots)

	cmd := &cobra.Command{
		Use:   "change-banners",
		Short: "Replace landing page banners (PNG only, slots 1-5)",
		RunE: func(cmd *cobra.Command, args []string) error {
			banners := make(map[int]api.FilePart)
			for i, path := range slots {
				if path == "" {
					continue
				}
				slot := i + 1
				part, err := readFilePart(fmt.Sprintf("banner%d", slot), path)
				if err != nil {
					return err
				}
				banners[slot] = part
			}
			return app.Account.ChangeBanners(cmd.Context(), banners)
		},
	}

	for i := range slots {
		slot := i + 1
		cmd.Flags().StringVar(&slots[i], fmt.Sprintf("banner%d", slot), "", fmt.Sprintf("PNG for banner slot %d", slot))
	}
	return cmd
}

func accountChangeGCashQRCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "change-gcash-qr <file>",
		Short: "Replace the GCash QR code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin := app.Session.Admin()
			if admin == nil {
				if !app.Session.FetchUser(cmd.Context()) {
					return fmt.Errorf("could not load admin profile")
				}
				admin = app.Session.Admin()
			}
			qr, err := readFilePart("gcash_qr", args[0])
			if err != nil {
				return err
			}
			return app.Account.ChangeGCashQR(cmd.Context(), qr, admin.UserID)
		},
	}
}
