package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() { //nolint: gochecknoinits
	applyCmd.Flags().StringVar(&applyOut, "out", "", "Write the generated zone to this file instead of stdout")
	applyCmd.Flags().BoolVar(&applyKeep, "keep", false, "Keep the persisted change log after writing --out")

	rootCmd.AddCommand(applyCmd)
}

var (
	applyOut  string
	applyKeep bool

	applyCmd = &cobra.Command{
		Use:   "apply",
		Short: "Apply the staged changes and generate the resulting zone",
		Long: `Apply the staged changes and generate the resulting zone.
Without --out the zone is printed and the change log is kept. With --out the
zone is written there (JSON when it ends in .json) and the change log is
cleared unless --keep is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}

			content, err := w.Apply(applyOut, applyKeep)
			if err != nil {
				return err
			}

			if applyOut == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			}

			return err
		},
	}
)
