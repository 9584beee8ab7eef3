package app

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/zonechange/internal/engine"
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

func init() { //nolint: gochecknoinits
	for _, cmd := range []*cobra.Command{recordsCmd, setCmd, removeCmd} {
		cmd.Flags().StringVar(&recordType, "type", "", "Record type, a or cname")
		cmd.Flags().StringVar(&recordName, "name", "", "Record name relative to the origin, @ for the apex")
		_ = cmd.MarkFlagRequired("type")
		_ = cmd.MarkFlagRequired("name")
	}

	setCmd.Flags().StringVar(&recordValue, "value", "", "Record value, an IPv4 address or an alias")
	setCmd.Flags().Uint32Var(&recordTTL, "ttl", 0, "Record TTL, zone TTL when 0")
	setCmd.Flags().BoolVar(&appendMode, "append", false, "Add the value next to existing ones")
	_ = setCmd.MarkFlagRequired("value")

	removeCmd.Flags().StringVar(&recordValue, "value", "", "Only remove the record carrying this value")

	rootCmd.AddCommand(recordsCmd, setCmd, removeCmd)
}

var (
	recordType  string
	recordName  string
	recordValue string
	recordTTL   uint32
	appendMode  bool

	recordsCmd = &cobra.Command{
		Use:   "records",
		Short: "Print the records of a name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := zone.ParseType(recordType)
			if err != nil {
				return err
			}

			w, err := openWorkspace()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Name", "TTL", "Type", "Value")

			for _, r := range w.Engine().GetRecords(t, recordName) {
				value, _ := zone.ValueOf(t, r)
				if err := table.Append([]string{r.Name, strconv.FormatUint(uint64(r.TTL), 10), t.String(), value}); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}

	setCmd = &cobra.Command{
		Use:   "set",
		Short: "Stage a record value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := zone.ParseType(recordType)
			if err != nil {
				return err
			}

			w, err := openWorkspace()
			if err != nil {
				return err
			}

			mode := engine.ModeOverride
			if appendMode {
				mode = engine.ModeAppend
			}

			if err := w.Engine().SetRecord(t, zone.NewRecord(t, recordName, recordValue, recordTTL), mode); err != nil {
				return err
			}

			if err := w.Save(); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), w.Engine().DescribeChange())

			return err
		},
	}

	removeCmd = &cobra.Command{
		Use:   "remove",
		Short: "Stage the removal of a name, or of one of its values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := zone.ParseType(recordType)
			if err != nil {
				return err
			}

			w, err := openWorkspace()
			if err != nil {
				return err
			}

			if err := w.Engine().RemoveRecordValue(t, recordName, recordValue); err != nil {
				return err
			}

			if err := w.Save(); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), w.Engine().DescribeChange())

			return err
		},
	}
)
