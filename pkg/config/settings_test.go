package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("flags.Parse(%v) failed: %v", args, err)
	}
	return flags
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(nil)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.SlidersPath != DefaultSlidersPath || s.Verbose || s.Seed != 0 {
		t.Errorf("defaults = %+v", s)
	}
}

func TestLoadSettingsPrecedence(t *testing.T) {
	tempDir := t.TempDir()
	settingsPath := filepath.Join(tempDir, "settings.yaml")
	content := "sliders: from-file.yaml\nseed: 7\nverbose: true\n"
	if err := os.WriteFile(settingsPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	t.Run("设置文件", func(t *testing.T) {
		s, err := LoadSettings(newFlags(t, "--config", settingsPath))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.SlidersPath != "from-file.yaml" || s.Seed != 7 || !s.Verbose {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("环境变量覆盖设置文件", func(t *testing.T) {
		t.Setenv("CIRCULARSLIDER_SEED", "11")
		s, err := LoadSettings(newFlags(t, "--config", settingsPath))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.Seed != 11 || s.SlidersPath != "from-file.yaml" {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("命令行参数优先", func(t *testing.T) {
		t.Setenv("CIRCULARSLIDER_SEED", "11")
		s, err := LoadSettings(newFlags(t, "--config", settingsPath, "--seed", "42", "--sliders", "cli.yaml"))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.Seed != 42 || s.SlidersPath != "cli.yaml" {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("设置文件不存在", func(t *testing.T) {
		_, err := LoadSettings(newFlags(t, "--config", filepath.Join(tempDir, "missing.yaml")))
		if err == nil {
			t.Error("Expected error for missing settings file")
		}
	})
}

func TestLoadSettingsEnvOnly(t *testing.T) {
	t.Setenv("CIRCULARSLIDER_VERBOSE", "true")
	t.Setenv("CIRCULARSLIDER_SLIDERS", "env.yaml")

	s, err := LoadSettings(newFlags(t))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if !s.Verbose || s.SlidersPath != "env.yaml" {
		t.Errorf("settings = %+v", s)
	}
}
