package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Runner spawns wrapped-tool invocations. BaseEnv is the complete child
// environment before any scenario overlay; harness-wide forced variables
// (such as the pinned FORGE_TEST_NOCAPTURE) live here rather than in the
// harness's own process environment, so independent runners cannot leak
// state into one another.
type Runner struct {
	BaseEnv []string
	Logger  *log.Logger
}

// Result captures one child invocation. It is owned by the checker that
// produced it and discarded after comparison.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run executes command with overlay applied on top of BaseEnv, writes stdin
// to the child and closes it, then blocks until the child exits, collecting
// both output streams in full. There is no timeout: a hung child hangs the
// harness, and that is preferable to a truncated transcript.
//
// The argument vector is passed to the OS literally; arguments containing
// spaces or quotes need no escaping. A command that cannot be started, or a
// child that emits output that is not valid UTF-8, is a harness failure
// rather than a scenario failure.
func (r *Runner) Run(command []string, overlay map[string]string, stdin []byte) (Result, error) {
	if len(command) == 0 {
		return Result{}, errors.New("empty scenario command")
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Env = overlayEnv(r.BaseEnv, overlay)
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if r.Logger != nil {
		r.Logger.Debug("spawning child", "command", strings.Join(command, " "))
	}

	exitCode, err := exitStatus(cmd.Run())
	if err != nil {
		return Result{}, fmt.Errorf("run %s: %w", command[0], err)
	}

	if !utf8.Valid(stdout.Bytes()) || !utf8.Valid(stderr.Bytes()) {
		return Result{}, fmt.Errorf("run %s: child output is not valid UTF-8", command[0])
	}

	if r.Logger != nil {
		r.Logger.Debug("child exited", "command", command[0], "code", exitCode)
	}

	return Result{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// exitStatus maps a Run error to the child's exit code. Anything that is not
// an *exec.ExitError (binary not found, start failure) is passed through as
// a real error.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}
	return 0, err
}
