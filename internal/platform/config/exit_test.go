package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/gamedata/internal/platform/config"
)

// runExitSubprocess reruns the named test in a child process, since os.Exit
// cannot be intercepted in-process.
func runExitSubprocess(t *testing.T, name string) (int, string) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^"+name+"$")
	cmd.Env = append(os.Environ(), "GAMEDATA_TEST_EXIT_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	return exitErr.ExitCode(), string(out)
}

func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("GAMEDATA_TEST_EXIT_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "bad data dir")
		return
	}

	code, out := runExitSubprocess(t, "TestExitf_ExitsWithCode1")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out, "fatal: bad data dir") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: bad data dir", out)
	}
}

func TestExitCodef_UsesGivenCode(t *testing.T) {
	if os.Getenv("GAMEDATA_TEST_EXIT_SUBPROCESS") == "1" {
		config.ExitCodef(3, "consistency: %d problems", 2)
		return
	}

	code, out := runExitSubprocess(t, "TestExitCodef_UsesGivenCode")
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if !strings.Contains(out, "consistency: 2 problems") {
		t.Fatalf("expected stderr to contain problem count, got %q", out)
	}
}
