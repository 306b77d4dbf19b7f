// Package harness runs the forge acceptance scenarios: each scenario invokes
// the wrapped tool as a child process and checks its output byte-for-byte
// against recorded reference transcripts.
package harness

// Scenario is one named, fully parameterized invocation of the wrapped tool
// plus the reference transcripts its output must match. Scenarios are
// immutable values, enumerated statically by the suites.
type Scenario struct {
	// Name is the human-readable label announced before execution.
	Name string

	// Command is the full argument vector. Token 0 resolves via PATH; the
	// vector is passed to the OS literally, never through a shell.
	Command []string

	// StdoutRef and StderrRef name reference transcript files, relative to
	// the checker's reference directory.
	StdoutRef string
	StderrRef string

	// Stdin is written to the child's input stream, which is then closed.
	Stdin []byte

	// Env is layered on top of the base environment for this invocation
	// only. It wins on key collision and never leaks into other scenarios.
	Env map[string]string
}
