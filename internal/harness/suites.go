package harness

// Suite membership and ordering are fixed at build time; there is no
// discovery. Every invocation carries -q, and a configured cross-compilation
// target adds --target to each one.

// baseCommand builds "<tool> <sub> -q [--target T]".
func baseCommand(tool []string, sub, target string) []string {
	args := append(append([]string(nil), tool...), sub, "-q")
	if target != "" {
		args = append(args, "--target", target)
	}
	return args
}

// RunSuite enumerates the scenarios exercising `forge run`.
func RunSuite(tool []string, target string) []Scenario {
	run := func(extra ...string) []string {
		return append(baseCommand(tool, "run", target), extra...)
	}
	return []Scenario{
		{
			Name:      "`forge run` (no isolation)",
			Command:   run(),
			StdoutRef: "run.default.stdout.ref",
			StderrRef: "run.default.stderr.ref",
			Stdin:     []byte("12\n21\n"),
			Env: map[string]string{
				"FORGEFLAGS": "-disable-isolation",
				// The build script's value must take precedence.
				"FORGETESTVAR": "wrongval",
			},
		},
		{
			Name:      "`forge run` (with arguments)",
			Command:   run("--bin", "forge-accept-test", "--", "hello world", `"hello world"`),
			StdoutRef: "run.args.stdout.ref",
			StderrRef: "run.args.stderr.ref",
		},
		{
			Name:      "`forge run` (subproject, no isolation)",
			Command:   run("-p", "subproj"),
			StdoutRef: "run.subproj.stdout.ref",
			StderrRef: "run.subproj.stderr.ref",
			Env:       map[string]string{"FORGEFLAGS": "-disable-isolation"},
		},
	}
}

// TestSuite enumerates the scenarios exercising `forge test`. Doc examples
// are not checked when cross-compiling, so the stderr reference for the
// default scenarios depends on whether a target is configured. That choice
// is made once, from the target passed in.
func TestSuite(tool []string, target string) []Scenario {
	docsRef := "test.stderr-docs.ref"
	if target != "" {
		docsRef = "test.stderr-empty.ref"
	}

	test := func(extra ...string) []string {
		return append(baseCommand(tool, "test", target), extra...)
	}
	return []Scenario{
		{
			Name:      "`forge test`",
			Command:   test(),
			StdoutRef: "test.default.stdout.ref",
			StderrRef: docsRef,
			Env:       map[string]string{"FORGEFLAGS": "-seed=feed"},
		},
		{
			Name:      "`forge test` (no isolation)",
			Command:   test(),
			StdoutRef: "test.default.stdout.ref",
			StderrRef: docsRef,
			Env:       map[string]string{"FORGEFLAGS": "-disable-isolation"},
		},
		{
			Name:      "`forge test` (raw-ptr tracking)",
			Command:   test(),
			StdoutRef: "test.default.stdout.ref",
			StderrRef: docsRef,
			Env:       map[string]string{"FORGEFLAGS": "-track-raw-pointers"},
		},
		{
			Name:      "`forge test` (with filter)",
			Command:   test("--", "--format=pretty", "le1"),
			StdoutRef: "test.filter.stdout.ref",
			StderrRef: docsRef,
		},
		{
			Name:      "`forge test` (test target)",
			Command:   test("--test", "test", "--", "--format=pretty"),
			StdoutRef: "test.test-target.stdout.ref",
			StderrRef: "test.stderr-empty.ref",
		},
		{
			Name:      "`forge test` (bin target)",
			Command:   test("--bin", "forge-accept-test", "--", "--format=pretty"),
			StdoutRef: "test.bin-target.stdout.ref",
			StderrRef: "test.stderr-empty.ref",
		},
		{
			Name:      "`forge test` (subproject, no isolation)",
			Command:   test("-p", "subproj"),
			StdoutRef: "test.subproj.stdout.ref",
			StderrRef: "test.stderr-empty.ref",
			Env:       map[string]string{"FORGEFLAGS": "-disable-isolation"},
		},
	}
}
