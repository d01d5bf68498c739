package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/circularslider/pkg/config"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/scene"
	"github.com/decker502/circularslider/pkg/surface"
)

func newSnapshotContainer(t *testing.T) *surface.Container {
	t.Helper()
	defs := &config.SlidersConfig{
		Window:  config.WindowConfig{Width: 1000, Height: 400},
		Sliders: []config.SliderDefinition{{Color: "#f1c40f", Min: 0, Max: 360, Step: 36, Radius: 160}},
	}
	c := scene.NewContainer(defs, geometry.Size{W: 1920, H: 1080})
	if _, err := scene.BuildSliders(c, defs.Sliders, 1); err != nil {
		t.Fatalf("BuildSliders failed: %v", err)
	}
	return c
}

func TestWrite(t *testing.T) {
	c := newSnapshotContainer(t)
	dir := t.TempDir()

	t.Run("不支持的扩展名不创建文件", func(t *testing.T) {
		path := filepath.Join(dir, "snapshot.jpg")
		err := write(path, c, 1)
		if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
			t.Fatalf("write() error = %v, want unsupported format", err)
		}
		if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
			t.Errorf("file %s should not exist, stat error = %v", path, statErr)
		}
	})

	t.Run("SVG", func(t *testing.T) {
		path := filepath.Join(dir, "snapshot.svg")
		if err := write(path, c, 1); err != nil {
			t.Fatalf("write() unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Errorf("output is not an SVG document: %.80s", data)
		}
	})

	t.Run("PNG", func(t *testing.T) {
		path := filepath.Join(dir, "snapshot.PNG")
		if err := write(path, c, 0.5); err != nil {
			t.Fatalf("write() unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !strings.HasPrefix(string(data), "\x89PNG") {
			t.Error("output is not a PNG file")
		}
	})

	t.Run("目录不存在", func(t *testing.T) {
		if err := write(filepath.Join(dir, "missing", "snapshot.svg"), c, 1); err == nil {
			t.Error("write() expected error for missing directory")
		}
	})
}

func TestParseAngles(t *testing.T) {
	got, err := parseAngles("30, 120,200")
	if err != nil {
		t.Fatalf("parseAngles failed: %v", err)
	}
	if len(got) != 3 || got[0] != 30 || got[1] != 120 || got[2] != 200 {
		t.Errorf("parseAngles() = %v", got)
	}
	if _, err := parseAngles("30,x"); err == nil {
		t.Error("parseAngles() expected error for non-number")
	}
}
