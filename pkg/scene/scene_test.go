package scene

import (
	"testing"

	"github.com/decker502/circularslider/pkg/config"
	"github.com/decker502/circularslider/pkg/geometry"
)

func TestSeedMakesStartAnglesReproducible(t *testing.T) {
	defs := &config.SlidersConfig{
		Window: config.WindowConfig{Width: 1000, Height: 400},
		Sliders: []config.SliderDefinition{
			{Color: "#c0392b", Min: 500, Max: 1000, Step: 5, Radius: 40},
			{Color: "#d35400", Min: 5000, Max: 10000, Step: 100, Radius: 80},
		},
	}

	build := func() []float64 {
		c := NewContainer(defs, geometry.Size{W: 1920, H: 1080})
		sliders, err := BuildSliders(c, defs.Sliders, 42)
		if err != nil {
			t.Fatalf("BuildSliders failed: %v", err)
		}
		var offsets []float64
		for _, s := range sliders {
			offsets = append(offsets, s.Offset())
		}
		return offsets
	}

	first, second := build(), build()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slider %d offset %g != %g with same seed", i, first[i], second[i])
		}
	}
}

func TestNewContainerSizes(t *testing.T) {
	defs := &config.SlidersConfig{
		Window:    config.WindowConfig{Width: 1000, Height: 600},
		Container: config.ContainerConfig{Width: 800},
	}
	c := NewContainer(defs, geometry.Size{W: 1920, H: 1080})
	if got := c.Size(); got != (geometry.Size{W: 800, H: 600}) {
		t.Errorf("Size() = %+v, want 800x600", got)
	}
	if got := c.Viewport(); got != (geometry.Size{W: 1920, H: 1080}) {
		t.Errorf("Viewport() = %+v", got)
	}
}
