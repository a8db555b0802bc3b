package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/prefkit/prefsync/cmd"
	"github.com/prefkit/prefsync/internal/cli"
)

var version = "0.0.1"
var commit = "none"
var date = "unknown"

func main() {
	container, err := cli.NewContainer(cli.InitOptions{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during initialization: %v\n", err)
		os.Exit(1)
	}

	log := container.Logger
	defer log.Sync()

	log.Infof("%s started", container.Config.Name)

	// setup commands
	rootCmd := cmd.NewRootCmd(container)
	rootCmd.AddCommand(
		cmd.NewImportCmd(container),
		cmd.NewKeysCmd(container),
		cmd.NewConfigCmd(container),
		cmd.NewUpdateCmd(container),
	)

	// execute the command
	if err := rootCmd.Execute(); err != nil {
		log.Error(fmt.Sprintf("%s exited with error: %v", container.Config.Name, err), nil)
		log.Sync()

		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}

	log.Infof("%s exited successfully", container.Config.Name)
	log.Sync()
}
