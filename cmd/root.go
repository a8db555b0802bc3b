package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prefkit/prefsync/internal/banner"
	"github.com/prefkit/prefsync/internal/cli"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(container *cli.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "prefsync",
		Short:   "One-shot preferences importer",
		Long: `PrefSync - import a preferences dump into your settings store.

            Reads a line-oriented preferences file and applies every
            recognized entry through the settings API, skipping the rest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			banner.CLIBanner(container.Config).Display()
			container.ThemeMgr.GetCurrentTheme().Info().Println("Run 'prefsync import <file>' to import preferences.")
			return nil
		},
	}

	return rootCmd
}
