package app

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(describeCmd, opsCmd)
}

var (
	describeCmd = &cobra.Command{
		Use:   "describe",
		Short: "Print a human readable summary of the staged changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), w.Engine().DescribeChange())

			return err
		},
	}

	opsCmd = &cobra.Command{
		Use:   "ops",
		Short: "Print the operations the staged changes replay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("#", "Action", "Type", "Name", "Value")

			for i, op := range w.Engine().DumpOperations() {
				value := op.Record.Value
				if v, ok := zone.ValueOf(op.Type, op.Record); ok && v != "" {
					value = v
				}

				if err := table.Append([]string{strconv.Itoa(i + 1), string(op.Action), op.Type.String(), op.Record.Name, value}); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}
)
