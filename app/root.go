// Package app implements the zonechange commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/zonechange/internal/config"
	"github.com/GoPowerDNS-Admin/zonechange/internal/logger"
	"github.com/GoPowerDNS-Admin/zonechange/internal/workspace"
)

var (
	configPath  string // directory holding main.toml
	zonePath    string
	changesPath string
	changeSet   string
	devMode     bool

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "zonechange",
		Short: "zonechange stages reviewable changes to a DNS zone",
		Long: `zonechange stages changes to a DNS zone file as a reviewable change log.
Changes are kept in a change log file or a named change set and only touch
the zone when they are applied.`,
		Args:              cobra.OnlyValidArgs,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func init() { //nolint: gochecknoinits
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Directory containing main.toml (built-in defaults when empty)")
	flags.StringVar(&zonePath, "zone", "", "Zone file, JSON when the extension is .json")
	flags.StringVar(&changesPath, "changes", "", "Change log file, YAML when the extension is .yaml or .yml")
	flags.StringVar(&changeSet, "changeset", "", "Named change set in the configured database")
	flags.BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if configPath == "" {
		cfg = config.Default()
	} else if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if devMode {
		cfg.DevMode = true
	}

	return logger.Init(cfg.Log)
}

func openWorkspace() (*workspace.Workspace, error) {
	return workspace.New(&cfg, workspace.Options{
		ZonePath:    zonePath,
		ChangesPath: changesPath,
		ChangeSet:   changeSet,
	})
}
