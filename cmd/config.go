package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prefkit/prefsync/internal/cli"
	"github.com/prefkit/prefsync/internal/filesystem"
)

// NewConfigCmd creates a config command
func NewConfigCmd(c *cli.Container) *cobra.Command {
	cfgCmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "config",
		Short:   "Manage PrefSync configuration",
		Long:    `Commands to manage and view your PrefSync configuration.`,
	}

	cfgCmd.AddCommand(NewConfigPreviewCmd(c))
	return cfgCmd
}

// NewConfigPreviewCmd creates a command to preview the config file
func NewConfigPreviewCmd(c *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the current configuration file",
		Long:  `Display the content of your PrefSync configuration file.`,
		Run: func(cmd *cobra.Command, args []string) {
			configPath := c.Paths[filesystem.ConfigFilePath]
			configData, err := os.ReadFile(configPath)
			if err != nil {
				color.Red("Error reading config file: %v", err)
				os.Exit(1)
			}

			color.New(color.FgHiCyan, color.Bold).Println("\n📄 Configuration File")
			color.New(color.FgHiWhite).Printf("Located at: %s\n\n", configPath)

			// Print the YAML content
			fmt.Println(string(configData))
		},
	}

	return cmd
}
