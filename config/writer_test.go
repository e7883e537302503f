package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), configText(nil, "")))
	if err != nil {
		t.Fatal(err)
	}

	// Re-parse from a different directory; the already-resolved absolute
	// paths must pass through untouched.
	reloaded, err := Load(writeConfig(t, t.TempDir(), cfg.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reloaded, cfg) {
		t.Fatalf("expected round-tripped config to be %+v; got %+v", cfg, reloaded)
	}
}

func TestEncodeFormat(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), configText(nil, "")))
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(cfg.String(), "\n"), "\n")
	if len(lines) != len(sampleConfig) {
		t.Fatalf("expected %d lines; got %d", len(sampleConfig), len(lines))
	}
	for idx, line := range lines {
		expKey := sampleConfig[idx][0]
		if !strings.HasPrefix(line, expKey+" = ") {
			t.Fatalf("expected line %d to assign %q; got %q", idx, expKey, line)
		}
	}

	// Boolean literals keep the original file style.
	if !strings.Contains(cfg.String(), "use_viewdirs = True") || !strings.Contains(cfg.String(), "no_batching = False") {
		t.Fatalf("expected True/False boolean literals; got:\n%s", cfg.String())
	}
}

func TestFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), configText(nil, "")))
	if err != nil {
		t.Fatal(err)
	}

	fields := cfg.Fields()
	if len(fields) != len(sampleConfig) {
		t.Fatalf("expected %d fields; got %d", len(sampleConfig), len(fields))
	}

	expTypes := map[string]string{
		"expname":       "string",
		"basedir":       "path",
		"dataset_type":  "enum",
		"factor":        "int",
		"raw_noise_std": "float",
		"no_batching":   "bool",
	}
	for _, field := range fields {
		expType, checked := expTypes[field.Key]
		if checked && field.Type != expType {
			t.Fatalf("expected %q to have type %s; got %s", field.Key, expType, field.Type)
		}
	}

	expDataDir := filepath.Join(filepath.Dir(cfg.BaseDir), "data/nerf_llff_data/fern")
	if cfg.DataDir != expDataDir {
		t.Fatalf("expected datadir to be %s; got %s", expDataDir, cfg.DataDir)
	}
}
