package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Kind  string `env:"CMD_TEST_KIND" envDefault:"string"`
	Count int    `env:"CMD_TEST_COUNT" envDefault:"1"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("JINTEROP_CMD_TEST_KIND", "long")
	t.Setenv("JINTEROP_CMD_TEST_COUNT", "4")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Kind, "kind", cfgRef.Kind, "kind")
	fs.IntVar(&cfgRef.Count, "count", cfgRef.Count, "count")

	if err := ParseArgs(fs, []string{"-kind", "double"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Kind != "double" {
		t.Fatalf("expected flag value for kind, got %q", cfgRef.Kind)
	}
	if cfgRef.Count != 4 {
		t.Fatalf("expected env count, got %d", cfgRef.Count)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("JINTEROP_CMD_TEST_COUNT", "7")

	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfgRef.Kind, "kind", "", "kind")
	if err := ParseConfigFromArgs(&cfgRef, fs, []string{"-kind", "float"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.Kind != "float" {
		t.Fatalf("expected parsed flag kind, got %q", cfgRef.Kind)
	}
	if cfgRef.Count != 7 {
		t.Fatalf("expected env count, got %d", cfgRef.Count)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected parse config to reject nil target")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceHash, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryRunsAndPropagatesError(t *testing.T) {
	t.Setenv("JINTEROP_OTEL_ENDPOINT", "")

	called := false
	if err := RunWithTelemetry(context.Background(), ServiceRand, func(ctx context.Context) error {
		called = ctx != nil
		return nil
	}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !called {
		t.Fatal("expected run to be called with a context")
	}

	boom := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceRand, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected run error, got %v", err)
	}
}
