package config

import "testing"

func TestTrimSourceExt(t *testing.T) {
	if got := TrimSourceExt("program.yaml"); got != "program" {
		t.Errorf("TrimSourceExt = %q, want %q", got, "program")
	}
	if got := TrimSourceExt("program.txt"); got != "program.txt" {
		t.Errorf("TrimSourceExt = %q, want unchanged", got)
	}
}

func TestHasSourceExt(t *testing.T) {
	if !HasSourceExt("a/b/program.yml") {
		t.Errorf("expected .yml to be recognized")
	}
	if HasSourceExt("a/b/program.json") {
		t.Errorf("did not expect .json to be recognized")
	}
}

func TestParseDriverConfigDefaults(t *testing.T) {
	cfg, err := ParseDriverConfig([]byte(`strict_auto_trait_checks: true`), "hornc.yaml")
	if err != nil {
		t.Fatalf("ParseDriverConfig: %v", err)
	}
	if cfg.Solver.Name != "recursive" {
		t.Errorf("Solver.Name = %q, want default %q", cfg.Solver.Name, "recursive")
	}
	if cfg.Solver.MaxSize != 10 {
		t.Errorf("Solver.MaxSize = %d, want default 10", cfg.Solver.MaxSize)
	}
	if !cfg.StrictAutoTraitChecks {
		t.Errorf("StrictAutoTraitChecks = false, want true")
	}
}

func TestParseDriverConfigOverrides(t *testing.T) {
	cfg, err := ParseDriverConfig([]byte("solver:\n  name: slg\n  max_size: 20\n"), "hornc.yaml")
	if err != nil {
		t.Fatalf("ParseDriverConfig: %v", err)
	}
	if cfg.Solver.Name != "slg" || cfg.Solver.MaxSize != 20 {
		t.Errorf("unexpected solver config: %+v", cfg.Solver)
	}
}
