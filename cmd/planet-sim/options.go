package main

import (
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/physics"
	"github.com/lixenwraith/planet-sim/scenario"
)

// options is the parsed command line
type options struct {
	scenario  string
	policy    string
	bounce    bool
	bounceSet bool
	headless  bool
	ticks     int
	debug     bool
	colorMode string
	mute      bool
}

func parseOptions(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.scenario, "scenario", "default",
		"Scenario TOML file or preset name ("+strings.Join(scenario.Names(), ", ")+")")
	fs.StringVar(&o.policy, "policy", "", "Collision policy override: absorb, divide, smart, none")
	fs.BoolVar(&o.bounce, "bounce", false, "Reflect bodies at the viewport edge")
	fs.BoolVar(&o.headless, "headless", false, "Run without a terminal and print a summary")
	fs.IntVar(&o.ticks, "ticks", parameter.HeadlessTicks, "Ticks to run in headless mode")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to logs/planet-sim.log")
	fs.StringVar(&o.colorMode, "color", "auto", "Color mode: auto, truecolor, 256")
	fs.BoolVar(&o.mute, "mute", false, "Disable audio")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	// Only an explicit -bounce overrides the scenario file
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "bounce" {
			o.bounceSet = true
		}
	})

	if o.ticks < 0 {
		return o, errors.Errorf("ticks must be non-negative, got %d", o.ticks)
	}
	switch o.colorMode {
	case "auto", "truecolor", "true", "24bit", "256":
	default:
		return o, errors.Errorf("unknown color mode %q", o.colorMode)
	}
	return o, nil
}

// loadScenario resolves a preset name or a file path, then applies command line overrides
func loadScenario(o options) (*scenario.Scenario, error) {
	sc, ok := scenario.Preset(o.scenario)
	if !ok {
		var err error
		if sc, err = scenario.Load(o.scenario); err != nil {
			return nil, err
		}
	}

	if o.policy != "" {
		p, err := physics.ParsePolicy(o.policy)
		if err != nil {
			return nil, err
		}
		sc.Config.Policy = p
	}
	if o.bounceSet {
		sc.Config.Bounce = o.bounce
	}
	return sc, nil
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}
