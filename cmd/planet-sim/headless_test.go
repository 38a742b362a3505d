package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/scenario"
)

func TestRunHeadlessLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	sim := newCollidingSim(t)

	st := runHeadless(sim, 3, log.New(&buf, "", 0))

	if st.Tick != 3 || st.Bodies != 1 || st.Absorptions != 1 {
		t.Errorf("Unexpected stats: %+v", st)
	}
	if !strings.Contains(buf.String(), "tick 1: body 1 absorbed body 2") {
		t.Errorf("Expected absorb event in log, got %q", buf.String())
	}
}

func TestRunHeadlessDefaultScenario(t *testing.T) {
	sc := scenario.Default()
	sim, err := engine.New(sc.Config, sc.Bodies)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	st := runHeadless(sim, 50, log.New(&buf, "", 0))
	if st.Tick != 50 {
		t.Errorf("Expected 50 ticks, got %d", st.Tick)
	}

	var out bytes.Buffer
	writeSummary(&out, sc.Name, st, sim.Energy())
	for _, want := range []string{"scenario:    default", "ticks:       50", "absorptions:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestHeadlessDebugRoutesEventsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	headlessMain(newCollidingSim(t), "pair", options{ticks: 2, debug: true}, &stdout, &stderr)

	if !strings.Contains(stderr.String(), "tick 1: body 1 absorbed body 2") {
		t.Errorf("Expected event on stderr, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "absorbed") {
		t.Errorf("Expected no event lines on stdout, got:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "scenario:    pair") || !strings.Contains(stdout.String(), "absorptions: 1") {
		t.Errorf("Expected summary on stdout, got:\n%s", stdout.String())
	}
	if strings.Contains(stderr.String(), "scenario:") {
		t.Errorf("Expected summary kept off stderr, got %q", stderr.String())
	}
}

func TestHeadlessQuietWithoutDebug(t *testing.T) {
	var stdout, stderr bytes.Buffer
	headlessMain(newCollidingSim(t), "pair", options{ticks: 2}, &stdout, &stderr)

	if stderr.Len() != 0 {
		t.Errorf("Expected empty stderr without -debug, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "ticks:       2") {
		t.Errorf("Expected summary on stdout, got:\n%s", stdout.String())
	}
}
