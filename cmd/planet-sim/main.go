package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/lixenwraith/planet-sim/audio"
	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/parameter"
)

func main() {
	opts, err := parseOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		fatal(err)
	}

	// Optional .env for the audio environment variables
	_ = godotenv.Load()

	sc, err := loadScenario(opts)
	if err != nil {
		fatal(err)
	}
	sim, err := engine.New(sc.Config, sc.Bodies)
	if err != nil {
		fatal(err)
	}

	// No terminal to draw on: fall back to a summary run
	if opts.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		headlessMain(sim, sc.Name, opts, os.Stdout, os.Stderr)
		return
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("scenario %s: %d bodies, policy %s", sc.Name, sim.Len(), sc.Config.Policy)
	for _, b := range sim.Bodies() {
		log.Printf("body %d: mass %.4g EM radius %.3g AU color %s",
			b.ID, b.Mass/parameter.EarthMass, b.Radius/parameter.AU, b.Color.Hex())
	}

	applyColorMode(opts.colorMode)
	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err := screen.Init(); err != nil {
		fatal(err)
	}

	// Panic recovery: restore the terminal before reporting
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	audioCfg := audio.LoadAudioConfig()
	if opts.mute {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the simulation runs silently
		log.Printf("audio unavailable: %v", err)
	}
	defer sounds.Cleanup()

	NewApp(screen, sim, sounds).run()
	log.Printf("quit at tick %d with %d bodies", sim.TickCount(), sim.Len())
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "planet-sim: %v\n", err)
	os.Exit(1)
}
