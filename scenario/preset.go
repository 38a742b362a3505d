package scenario

import (
	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/parameter"
)

// Default returns the built-in three-body start: a heavy central mass and two
// small bodies launched across it, colored from the fixed seed
func Default() *Scenario {
	f := File{
		Name: "default",
		Bodies: []BodySpec{
			{X: 1300, Y: 1400, Radius: 0.2, Mass: 1e1, VX: -80 * 1000, Color: "#ff3c3c"},
			{X: -1000, Y: -1000, Radius: 1, Mass: 1e10},
			{X: -1000, Y: -240, Radius: 0.2, Mass: 1e1, VX: -185 * 1000},
		},
	}

	s, err := f.Build(engine.DefaultConfig())
	if err != nil {
		// Compiled-in values; only a broken parameter change gets here
		panic(err)
	}
	return s
}

// Names lists the built-in presets accepted by Preset
func Names() []string {
	return []string{"default", "binary"}
}

// Preset returns a built-in scenario by name
func Preset(name string) (*Scenario, bool) {
	switch name {
	case "default":
		return Default(), true
	case "binary":
		return binary(), true
	default:
		return nil, false
	}
}

// binary is a heavy primary with a companion and an outer planet on circular orbits around it
func binary() *Scenario {
	seed := uint64(parameter.ColorSeed)
	f := File{
		Name: "binary",
		Seed: &seed,
		Bodies: []BodySpec{
			{Name: "primary", X: 0, Y: 0, Radius: 1, Mass: 1e10, Color: "#ffd27f"},
			{Name: "companion", X: 2000, Y: 0, Radius: 0.4, Mass: 1e8, OrbitAround: "primary"},
			{X: -4500, Y: 0, Radius: 0.2, Mass: 1e1, OrbitAround: "primary", Clockwise: true},
		},
	}

	s, err := f.Build(engine.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}
