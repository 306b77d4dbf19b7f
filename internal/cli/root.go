package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/forgebuild/forgecheck/internal/config"
	"github.com/forgebuild/forgecheck/internal/harness"
)

func Execute() error {
	err := newRootCommand().Execute()
	if err != nil {
		// Failures report on stdout, after the offending scenario's output
		// dump, per the transcript contract.
		fmt.Printf("\nTEST FAIL: %v\n", err)
	}
	return err
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "forgecheck",
		Short:         "Golden-file acceptance tests for the forge build wrapper",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runHarness,
	}

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func runHarness(cmd *cobra.Command, args []string) error {
	root, err := harnessRoot()
	if err != nil {
		return err
	}
	// Reference paths in scenarios are relative; resolve them against the
	// harness root no matter where the binary was invoked from.
	if err := os.Chdir(root); err != nil {
		return err
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr())
	if os.Getenv("FORGECHECK_VERBOSE") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	driver := &harness.Driver{
		Tool:        cfg.Tool,
		RefDir:      cfg.RefsDir,
		Target:      os.Getenv(harness.EnvTarget),
		Env:         os.Environ(),
		Out:         cmd.OutOrStdout(),
		Logger:      logger,
		SetupStdout: cmd.OutOrStdout(),
		SetupStderr: cmd.ErrOrStderr(),
	}
	return driver.Run()
}

// harnessRoot locates the directory the harness runs from: an explicit
// FORGECHECK_ROOT, else the directory holding the executable.
func harnessRoot() (string, error) {
	if root := os.Getenv("FORGECHECK_ROOT"); root != "" {
		return filepath.Clean(root), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
