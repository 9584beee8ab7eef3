package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/zonechange/internal/db"
	"github.com/GoPowerDNS-Admin/zonechange/internal/db/controller/changeset"
)

func init() { //nolint: gochecknoinits
	changeSetCmd.AddCommand(changeSetListCmd, changeSetDeleteCmd)
	rootCmd.AddCommand(changeSetCmd)
}

var (
	changeSetCmd = &cobra.Command{
		Use:   "changeset",
		Short: "Manage change sets stored in the database",
	}

	changeSetListCmd = &cobra.Command{
		Use:   "list",
		Short: "List stored change sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			sets, err := changeset.GetAll(conn)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Name", "UUID", "Zone", "Changes", "Updated")

			for i := range sets {
				changes, err := changeset.Changes(&sets[i])
				if err != nil {
					return err
				}

				row := []string{
					sets[i].Name,
					sets[i].UUID,
					sets[i].Zone,
					strconv.Itoa(len(changes)),
					sets[i].UpdatedAt.Format(time.RFC3339),
				}
				if err := table.Append(row); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}

	changeSetDeleteCmd = &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a stored change set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			if err := changeset.Delete(conn, args[0]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "change set %s deleted\n", args[0])

			return err
		},
	}
)
