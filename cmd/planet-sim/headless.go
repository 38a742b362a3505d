package main

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/event"
	"github.com/lixenwraith/planet-sim/parameter"
)

// headlessMain runs opts.ticks ticks and prints the summary to stdout
// Event lines go to stderr only with -debug
func headlessMain(sim *engine.Simulation, name string, opts options, stdout, stderr io.Writer) {
	out := io.Discard
	if opts.debug {
		out = stderr
	}
	st := runHeadless(sim, opts.ticks, log.New(out, "", log.Ltime))
	writeSummary(stdout, name, st, sim.Energy())
}

// runHeadless advances sim for ticks steps, logging every collision event
func runHeadless(sim *engine.Simulation, ticks int, logger *log.Logger) engine.Stats {
	for i := 0; i < ticks; i++ {
		sim.Tick()
		logEvents(logger, sim.Events().Consume())
	}
	return sim.Stats()
}

func logEvents(logger *log.Logger, events []event.Event) {
	for _, e := range events {
		logger.Printf("tick %d: %s", e.Tick, e)
	}
}

// writeSummary prints the end-of-run report
func writeSummary(w io.Writer, name string, st engine.Stats, energy float64) {
	fmt.Fprintf(w, "scenario:    %s\n", name)
	fmt.Fprintf(w, "ticks:       %d\n", st.Tick)
	fmt.Fprintf(w, "bodies:      %d\n", st.Bodies)
	fmt.Fprintf(w, "total mass:  %.10g EM\n", st.TotalMass/parameter.EarthMass)
	fmt.Fprintf(w, "absorptions: %d\n", st.Absorptions)
	fmt.Fprintf(w, "divisions:   %d (%d blocked by cooldown)\n", st.Divisions, st.Suppressed)
	fmt.Fprintf(w, "energy:      %.6e J\n", energy)
}
