package config_test

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/jinterop/internal/platform/config"
)

// TestExitf_ExitsWithCode1 verifies that Exitf writes to stderr and exits
// with code 1. It uses the subprocess test pattern because os.Exit cannot be
// intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	out, code := runSubprocess(t, "^TestExitf_ExitsWithCode1$", "TEST_EXITF_SUBPROCESS=1")
	if code != config.ExitFailure {
		t.Fatalf("expected exit code %d, got %d", config.ExitFailure, code)
	}
	if !strings.Contains(out, "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", out)
	}
}

func TestExitCodef_UsesCode(t *testing.T) {
	if os.Getenv("TEST_EXITCODEF_SUBPROCESS") == "1" {
		config.ExitCodef(config.ExitUsage, "usage: %s", "bad flag")
		return
	}

	out, code := runSubprocess(t, "^TestExitCodef_UsesCode$", "TEST_EXITCODEF_SUBPROCESS=1")
	if code != config.ExitUsage {
		t.Fatalf("expected exit code %d, got %d", config.ExitUsage, code)
	}
	if !strings.Contains(out, "usage: bad flag") {
		t.Fatalf("expected stderr to contain %q, got %q", "usage: bad flag", out)
	}
}

func runSubprocess(t *testing.T, run, envVar string) (string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run="+run)
	cmd.Env = append(os.Environ(), envVar)

	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	return string(out), exitErr.ExitCode()
}
