package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

func propertiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Review, verify and remove property listings",
	}
	cmd.AddCommand(propertiesListCmd(app))
	cmd.AddCommand(propertiesVerifyCmd(app))
	cmd.AddCommand(propertiesDeleteCmd(app))
	return cmd
}

func propertiesListCmd(app *App) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List property listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, err := app.Properties.List(cmd.Context())
			if err != nil {
				return err
			}
			if pendingOnly {
				properties = view.BucketProperties(properties).Pending
			}
			printProperties(properties)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only listings awaiting verification")
	return cmd
}

func printProperties(properties []models.Property) {
	rows := make([][]string, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, []string{
			fmt.Sprint(p.PropertyID),
			orDash(p.Title),
			orDash(p.City),
			orDash(p.OwnerName),
			fmt.Sprint(len(p.Rooms)),
			yesNo(p.Verified),
		})
	}
	table([]string{"ID", "TITLE", "CITY", "OWNER", "ROOMS", "VERIFIED"}, rows)
}

func propertiesVerifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <property-id>",
		Short: "Mark a listing as verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			properties, err := app.Properties.Verify(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProperties(properties)
			return nil
		},
	}
}

func propertiesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <property-id>",
		Short: "Permanently remove a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			properties, err := app.Properties.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProperties(properties)
			return nil
		},
	}
}
