package harness

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBaseCommand(t *testing.T) {
	got := baseCommand([]string{"forge"}, "run", "")
	want := []string{"forge", "run", "-q"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("baseCommand mismatch (-want +got):\n%s", diff)
	}

	got = baseCommand([]string{"launcher", "forge"}, "test", "armv7-unknown-none")
	want = []string{"launcher", "forge", "test", "-q", "--target", "armv7-unknown-none"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("baseCommand with target mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSuiteCommands(t *testing.T) {
	scenarios := RunSuite([]string{"forge"}, "")

	var got [][]string
	for _, sc := range scenarios {
		got = append(got, sc.Command)
	}
	want := [][]string{
		{"forge", "run", "-q"},
		{"forge", "run", "-q", "--bin", "forge-accept-test", "--", "hello world", `"hello world"`},
		{"forge", "run", "-q", "-p", "subproj"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("run suite commands mismatch (-want +got):\n%s", diff)
	}

	if string(scenarios[0].Stdin) != "12\n21\n" {
		t.Fatalf("first scenario stdin = %q", scenarios[0].Stdin)
	}
	if scenarios[0].Env["FORGEFLAGS"] != "-disable-isolation" {
		t.Fatalf("first scenario FORGEFLAGS = %q", scenarios[0].Env["FORGEFLAGS"])
	}
}

func TestTestSuiteStderrRefSelection(t *testing.T) {
	// Doc examples run on the host only: the default scenarios expect the
	// docs stderr unless a cross-compilation target is configured.
	host := TestSuite([]string{"forge"}, "")
	for i := 0; i < 4; i++ {
		if host[i].StderrRef != "test.stderr-docs.ref" {
			t.Fatalf("host scenario %d stderr ref = %q", i, host[i].StderrRef)
		}
	}

	foreign := TestSuite([]string{"forge"}, "armv7-unknown-none")
	for i, sc := range foreign {
		if sc.StderrRef != "test.stderr-empty.ref" {
			t.Fatalf("foreign scenario %d stderr ref = %q", i, sc.StderrRef)
		}
	}
}

func TestSuitesAreWellFormed(t *testing.T) {
	for _, target := range []string{"", "armv7-unknown-none"} {
		all := append(RunSuite([]string{"forge"}, target), TestSuite([]string{"forge"}, target)...)
		if len(all) != 10 {
			t.Fatalf("target %q: scenario count = %d, want 10", target, len(all))
		}

		seen := map[string]bool{}
		for _, sc := range all {
			if len(sc.Command) == 0 {
				t.Fatalf("scenario %q has an empty command", sc.Name)
			}
			if sc.StdoutRef == "" || sc.StderrRef == "" {
				t.Fatalf("scenario %q is missing a reference", sc.Name)
			}
			if seen[sc.Name] {
				t.Fatalf("duplicate scenario name %q", sc.Name)
			}
			seen[sc.Name] = true

			if target != "" {
				found := false
				for i, tok := range sc.Command {
					if tok == "--target" && i+1 < len(sc.Command) && sc.Command[i+1] == target {
						found = true
					}
				}
				if !found {
					t.Fatalf("scenario %q command lacks --target %s: %v", sc.Name, target, sc.Command)
				}
			}
		}
	}
}
