package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/hallo/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if cfg.ProjectDefaults() != model.StandardDefaults() {
		t.Fatalf("ProjectDefaults() = %+v, want %+v", cfg.ProjectDefaults(), model.StandardDefaults())
	}
}

func TestDefaultConfig_MatchesModelDefaults(t *testing.T) {
	d := DefaultConfig().Defaults
	if got := model.Weeks(d.LeadWeeks); got != model.DefaultLead {
		t.Errorf("LeadWeeks = %d (%v), want %v", d.LeadWeeks, got, model.DefaultLead)
	}
	if got := model.Weeks(d.LengthWeeks); got != model.DefaultLength {
		t.Errorf("LengthWeeks = %d (%v), want %v", d.LengthWeeks, got, model.DefaultLength)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[defaults]
project_name = "Retainer"
approx_value = 7500
lead_weeks = 1

[validation]
strict = true

[appearance]
theme = "tokyo-night"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.Defaults.ProjectName != "Retainer" {
		t.Errorf("ProjectName = %q, want Retainer", cfg.Defaults.ProjectName)
	}
	if cfg.Defaults.ApproxValue != 7500 {
		t.Errorf("ApproxValue = %d, want 7500", cfg.Defaults.ApproxValue)
	}
	if cfg.Defaults.LeadWeeks != 1 {
		t.Errorf("LeadWeeks = %d, want 1", cfg.Defaults.LeadWeeks)
	}
	if cfg.Defaults.LengthWeeks != 4 {
		t.Errorf("LengthWeeks = %d, want default 4", cfg.Defaults.LengthWeeks)
	}
	if !cfg.Validation.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", cfg.Appearance.Theme)
	}

	d := cfg.ProjectDefaults()
	if d.Lead != model.Weeks(1) || d.Length != model.Weeks(4) {
		t.Errorf("ProjectDefaults() lead/length = %v/%v, want 1w/4w", d.Lead, d.Length)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[defaults]
approx_value = 7500
length_weeks = 6
`)
	t.Setenv("HALLO_APPROX_VALUE", "900")
	t.Setenv("HALLO_STRICT", "true")
	t.Setenv("HALLO_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.Defaults.ApproxValue != 900 {
		t.Errorf("ApproxValue = %d, want 900 from env", cfg.Defaults.ApproxValue)
	}
	if cfg.Defaults.LengthWeeks != 6 {
		t.Errorf("LengthWeeks = %d, want 6 from file", cfg.Defaults.LengthWeeks)
	}
	if !cfg.Validation.Strict {
		t.Error("Strict = false, want true from env")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[defaults\nlead_weeks = ")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("Load(malformed) = %v, want parsing error", err)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[defaults]
lead_weeks = -1

[appearance]
theme = "neon"
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load = nil error, want validation failure")
	}
	for _, want := range []string{"lead_weeks", "neon"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Defaults.ProjectName = "Audit"
	cfg.Defaults.LengthWeeks = 2
	cfg.Validation.Strict = true
	cfg.Appearance.Theme = "terminal"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(path) {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load after Save = %+v, want %+v", got, cfg)
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.LengthWeeks = -2
	cfg.Defaults.LeadWeeks = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate = nil, want error")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Fatalf("Validate = %v, want two joined errors", err)
	}
}

func TestConfigPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := ConfigPath(), filepath.Join(dir, "hallo", "config.toml"); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}
