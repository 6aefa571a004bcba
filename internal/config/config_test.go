package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the TIMETABLE_* keys for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TIMETABLE_DATA_FILE",
		"TIMETABLE_EXPORT_DIR",
		"TIMETABLE_LOG_LEVEL",
		"TIMETABLE_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	paths := PathsAt(t.TempDir())

	cfg, err := Load(paths, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataFile != paths.DataFile {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, paths.DataFile)
	}
	if cfg.ExportDir == "" {
		t.Error("ExportDir should default to the executable directory")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %q, want console", cfg.Log.Format)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	paths := PathsAt(t.TempDir())

	yaml := "data_file: /srv/tt.json\nexport_dir: /srv/out\nlog:\n  level: debug\n  format: json\n"
	if err := os.WriteFile(paths.Config, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(paths, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataFile != "/srv/tt.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.ExportDir != "/srv/out" {
		t.Errorf("ExportDir = %q", cfg.ExportDir)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	paths := PathsAt(t.TempDir())

	if err := os.WriteFile(paths.Config, []byte("data_file: /from/file.json\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("TIMETABLE_DATA_FILE", "/from/env.json")

	cfg, err := Load(paths, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataFile != "/from/env.json" {
		t.Errorf("DataFile = %q, want /from/env.json", cfg.DataFile)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	paths := PathsAt(t.TempDir())

	if err := os.WriteFile(paths.Env, []byte("TIMETABLE_EXPORT_DIR=/from/dotenv\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := Load(paths, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ExportDir != "/from/dotenv" {
		t.Errorf("ExportDir = %q, want /from/dotenv", cfg.ExportDir)
	}
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	paths := PathsAt(t.TempDir())

	t.Run("missing explicit file is an error", func(t *testing.T) {
		if _, err := Load(paths, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("explicit file is used", func(t *testing.T) {
		custom := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(custom, []byte("export_dir: /custom\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(paths, custom)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.ExportDir != "/custom" {
			t.Errorf("ExportDir = %q, want /custom", cfg.ExportDir)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid console", Config{DataFile: "a.json", Log: LogConfig{Format: "console"}}, false},
		{"valid json", Config{DataFile: "a.json", Log: LogConfig{Format: "json"}}, false},
		{"empty data file", Config{DataFile: " ", Log: LogConfig{Format: "console"}}, true},
		{"bad format", Config{DataFile: "a.json", Log: LogConfig{Format: "xml"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
