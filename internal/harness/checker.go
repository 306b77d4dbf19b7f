package harness

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MismatchError reports a scenario whose outcome diverged from its
// references. Its message matches the transcript contract's failure line.
type MismatchError struct {
	Scenario string
	ExitCode int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("exit code was %d", e.ExitCode)
}

// Checker runs scenarios one at a time against the reference store.
type Checker struct {
	Runner *Runner
	RefDir string
	Out    io.Writer
}

// Check announces the scenario, runs it, and compares the outcome against
// its reference transcripts. A scenario passes when the child exits 0, its
// timing-scrubbed stdout equals the stdout reference, and its raw stderr
// equals the stderr reference. On divergence Check dumps the full actual
// output and returns a *MismatchError; the caller is expected to abort the
// whole run. A passing scenario produces no output beyond the announcement.
//
// Reference files are read fresh on every call so edits to them between
// runs are always honored.
func (c *Checker) Check(sc Scenario) error {
	fmt.Fprintf(c.Out, "Testing %s...\n", sc.Name)

	res, err := c.Runner.Run(sc.Command, sc.Env, sc.Stdin)
	if err != nil {
		return err
	}

	wantStdout, err := c.readRef(sc.StdoutRef)
	if err != nil {
		return err
	}
	wantStderr, err := c.readRef(sc.StderrRef)
	if err != nil {
		return err
	}

	if res.ExitCode == 0 && ScrubTimings(res.Stdout) == wantStdout && res.Stderr == wantStderr {
		return nil
	}

	// Reproduce both streams verbatim so the first divergence arrives with
	// complete diagnostic context.
	fmt.Fprintf(c.Out, "--- BEGIN stdout ---\n%s--- END stdout ---\n", res.Stdout)
	fmt.Fprintf(c.Out, "--- BEGIN stderr ---\n%s--- END stderr ---\n", res.Stderr)
	return &MismatchError{Scenario: sc.Name, ExitCode: res.ExitCode}
}

func (c *Checker) readRef(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(c.RefDir, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
