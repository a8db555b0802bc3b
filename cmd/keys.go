package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/prefkit/prefsync/internal/cli"
	"github.com/prefkit/prefsync/internal/prefs"
)

// NewKeysCmd creates a command listing the recognized preference names
func NewKeysCmd(c *cli.Container) *cobra.Command {
	keysCmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "keys",
		Short:   "List the recognized preference names",
		Long: `Print every preference name the importer recognizes, with its value
kind. Names outside this list are ignored during import.`,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Kind", "Set"})

			for _, entry := range prefs.DefaultRegistry().All() {
				set := "base"
				if entry.Extra {
					set = "extra"
				}
				table.Append([]string{entry.Name, entry.Kind.String(), set})
			}

			table.Render()
		},
	}

	return keysCmd
}
