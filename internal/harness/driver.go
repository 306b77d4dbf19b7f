package harness

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// Environment variables the driver reads at startup. There are no flags.
const (
	// EnvSysroot names the prerequisite toolchain root. When it is unset,
	// the driver runs `forge setup -q` once before any scenario. A root
	// built lazily mid-scenario would pollute that scenario's transcript.
	EnvSysroot = "FORGE_SYSROOT"

	// EnvTarget names an optional cross-compilation target. When set, every
	// invocation gets --target and the test suite expects the empty stderr
	// reference instead of the docs one.
	EnvTarget = "FORGE_TEST_TARGET"

	// envNoCapture affects tool test output. The driver pins it to "0" in
	// every child environment so transcripts are deterministic regardless
	// of the caller's ambient environment.
	envNoCapture = "FORGE_TEST_NOCAPTURE"
)

var banner = color.New(color.FgGreen, color.Bold).FprintfFunc()

// Driver owns one whole harness run: optional one-time setup, then the run
// suite, then the test suite. The first divergence aborts everything;
// remaining scenarios never execute.
type Driver struct {
	// Tool is the wrapped tool's argv prefix.
	Tool []string
	// RefDir holds the reference transcripts.
	RefDir string
	// Target is the cross-compilation target, read once at startup.
	Target string
	// Env is the ambient environment the harness was started with. Forced
	// overrides are layered onto it per child, never written back.
	Env []string

	Out    io.Writer
	Logger *log.Logger

	// SetupStdout and SetupStderr receive the setup invocation's output
	// unfiltered; setup output is never compared against references.
	SetupStdout io.Writer
	SetupStderr io.Writer
}

// Run executes the full harness. It returns nil only when setup (if needed)
// and every scenario in both suites passed and the success line was printed.
func (d *Driver) Run() error {
	runner := &Runner{
		BaseEnv: withEnv(d.Env, envNoCapture, "0"),
		Logger:  d.Logger,
	}

	targetStr := ""
	if d.Target != "" {
		targetStr = fmt.Sprintf(" for target %s", d.Target)
	}
	banner(d.Out, "## Running `forge` acceptance tests%s\n", targetStr)

	if getEnv(d.Env, EnvSysroot) == "" {
		if err := d.setup(runner); err != nil {
			return err
		}
	}

	checker := &Checker{Runner: runner, RefDir: d.RefDir, Out: d.Out}
	for _, sc := range RunSuite(d.Tool, d.Target) {
		if err := checker.Check(sc); err != nil {
			return err
		}
	}
	for _, sc := range TestSuite(d.Tool, d.Target) {
		if err := checker.Check(sc); err != nil {
			return err
		}
	}

	fmt.Fprintf(d.Out, "\nTEST SUCCESSFUL!\n")
	return nil
}

// setup runs `forge setup -q` synchronously with output passed through. A
// non-zero exit aborts the harness before any scenario runs.
func (d *Driver) setup(runner *Runner) error {
	command := baseCommand(d.Tool, "setup", d.Target)
	if d.Logger != nil {
		d.Logger.Debug("building toolchain root", "command", strings.Join(command, " "))
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Env = runner.BaseEnv
	cmd.Stdout = d.SetupStdout
	cmd.Stderr = d.SetupStderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("setup: %s: %w", strings.Join(command, " "), err)
	}
	return nil
}
