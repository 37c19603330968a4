package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "no_such.yaml"))
	if cfg.EvenURL != "" || cfg.OddHost != "" || cfg.CACert != nil {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken yaml", "invalid: yaml: syntax: ["},
		{"not a mapping", "- just\n- a\n- list\n"},
		{"wrong value type", "even_url: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "piu.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg := Load(path)
			if cfg.EvenURL != "" || cfg.OddHost != "" || cfg.CACert != nil {
				t.Errorf("malformed file must yield empty config, got %+v", cfg)
			}
		})
	}
}

func TestLoad_Values(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piu.yaml")
	content := []byte("even_url: https://even.example.org\nodd_host: odd.example.org\ncacert: false\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.EvenURL != "https://even.example.org" {
		t.Errorf("EvenURL = %q", cfg.EvenURL)
	}
	if cfg.OddHost != "odd.example.org" {
		t.Errorf("OddHost = %q", cfg.OddHost)
	}
	if cfg.CACert == nil || *cfg.CACert {
		t.Errorf("CACert = %v, want false", cfg.CACert)
	}
}

func TestLoad_CACertUnsetVsFalse(t *testing.T) {
	dir := t.TempDir()

	unset := filepath.Join(dir, "unset.yaml")
	if err := os.WriteFile(unset, []byte("even_url: https://x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if cfg := Load(unset); cfg.CACert != nil {
		t.Errorf("CACert should stay nil when key is absent, got %v", *cfg.CACert)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piu.yaml")
	verify := true
	in := Config{EvenURL: "https://even.example.org", OddHost: "odd.example.org", CACert: &verify}

	if xe := Save(in, path); xe != nil {
		t.Fatalf("unexpected error: %v", xe)
	}
	out := Load(path)
	if out.EvenURL != in.EvenURL || out.OddHost != in.OddHost {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out.CACert == nil || !*out.CACert {
		t.Errorf("CACert round trip mismatch: %v", out.CACert)
	}
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "piu.yaml")
	if xe := Save(Config{EvenURL: "https://x"}, path); xe != nil {
		t.Fatalf("unexpected error: %v", xe)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
}

func TestSave_OverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piu.yaml")
	if err := os.WriteFile(path, []byte("odd_host: old.example.org\nstray_key: gone\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if xe := Save(Config{EvenURL: "https://new"}, path); xe != nil {
		t.Fatalf("unexpected error: %v", xe)
	}
	cfg := Load(path)
	if cfg.EvenURL != "https://new" {
		t.Errorf("EvenURL = %q", cfg.EvenURL)
	}
	if cfg.OddHost != "" {
		t.Errorf("stale OddHost survived overwrite: %q", cfg.OddHost)
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != "piu.yaml" {
		t.Errorf("DefaultPath = %q, want piu.yaml basename", p)
	}
	if filepath.Base(filepath.Dir(p)) != "piu" {
		t.Errorf("DefaultPath = %q, want piu app dir", p)
	}
}
