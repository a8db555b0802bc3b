package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/prefkit/prefsync/internal/cli"
	"github.com/prefkit/prefsync/internal/prefs"
	"github.com/prefkit/prefsync/internal/sink/sqlite"
)

// ExitCodeError carries the process exit code for a failed command.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string { return e.Err.Error() }

func (e *ExitCodeError) Unwrap() error { return e.Err }

// NewImportCmd creates the import command
func NewImportCmd(c *cli.Container) *cobra.Command {
	var (
		includeBools bool
		dryRun       bool
		dbPath       string
	)

	importCmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "import [file]",
		Short:   "Import a preferences dump into the settings store",
		Long: `Read a line-oriented preferences file (Name=TypeTagValue) and apply
every recognized entry to the settings store. Unrecognized names are
ignored, so a full preferences dump can be imported as-is.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, c, args, prefs.Options{
				IncludeBools: includeBools,
				DryRun:       dryRun,
			}, dbPath)
		},
	}

	importCmd.Flags().BoolVar(&includeBools, "include-bools", c.UserConfig.Import.IncludeBools,
		"import boolean preferences (including the extra-booleans set)")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", c.UserConfig.Import.DryRun,
		"parse and validate without writing to the settings store")
	importCmd.Flags().StringVar(&dbPath, "db", c.PrefsDBPath(),
		"path of the preferences database to write to")

	return importCmd
}

func runImport(cmd *cobra.Command, c *cli.Container, args []string, opts prefs.Options, dbPath string) error {
	currentTheme := c.ThemeMgr.GetCurrentTheme()

	path, cancelled, err := resolveImportPath(args)
	if err != nil {
		return err
	}
	if cancelled {
		// User cancelled file selection: not an error.
		c.Logger.Info("import cancelled during file selection", map[string]interface{}{
			"code": int(prefs.CodeCancelled),
		})
		currentTheme.Warning().Println("Import cancelled.")
		return nil
	}

	var sink prefs.Sink
	if opts.DryRun {
		sink = prefs.NewInMemorySink()
	} else {
		store, err := sqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open settings store: %w", err)
		}
		defer store.Close()
		sink = store
	}

	importer := prefs.NewImporter(sink, nil, c.Logger)

	summary, code, err := importer.ImportFile(cmd.Context(), path, opts)
	switch code {
	case prefs.CodeOpenFailure:
		currentTheme.Error().Printf("Cannot open %s: %v\n", path, err)
		return &ExitCodeError{Code: 2, Err: err}
	case prefs.CodeSuccess:
		if opts.DryRun {
			currentTheme.Info().Println("Dry run, nothing was written.")
		}
		currentTheme.Success().Printf("Imported %d of %d lines (%d unknown, %d malformed).\n",
			summary.Applied, summary.Lines, summary.Skipped, summary.Malformed)
		return nil
	default:
		currentTheme.Error().Printf("Import failed: %v\n", err)
		return &ExitCodeError{Code: 1, Err: err}
	}
}

// resolveImportPath picks the preferences file from the argument list or,
// interactively, from a prompt. Ctrl+C during the prompt is the user-cancel
// path and is reported via the cancelled flag.
func resolveImportPath(args []string) (path string, cancelled bool, err error) {
	if len(args) == 1 {
		return args[0], false, nil
	}

	prompt := &survey.Input{
		Message: "Preferences file to import:",
	}
	err = survey.AskOne(prompt, &path, survey.WithValidator(survey.Required))
	if errors.Is(err, terminal.InterruptErr) {
		return "", true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select preferences file: %w", err)
	}

	return path, false, nil
}
