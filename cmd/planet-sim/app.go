package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-sim/audio"
	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/render"
)

// App drives the interactive loop: input between ticks, one tick and one render per frame
type App struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	renderer *render.TerminalRenderer
	sounds   *audio.SoundManager
	paused   bool
}

// NewApp wires a simulation to an initialized screen; sounds may be nil
func NewApp(screen tcell.Screen, sim *engine.Simulation, sounds *audio.SoundManager) *App {
	screen.HideCursor()
	return &App{
		screen:   screen,
		sim:      sim,
		renderer: render.NewTerminalRenderer(screen),
		sounds:   sounds,
	}
}

// handleInput applies one terminal event; returns false on quit
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'p', 'P', ' ':
			a.paused = !a.paused
			log.Printf("paused=%v at tick %d", a.paused, a.sim.TickCount())
		case 't', 'T':
			a.renderer.ToggleTrails()
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.renderer.Resize(w, h)
		a.screen.Sync()
	}
	return true
}

// step runs one frame: a tick unless paused, event dispatch, then render
func (a *App) step() {
	if !a.paused {
		a.sim.Tick()
		a.dispatch()
	}
	a.renderer.RenderFrame(a.sim.Snapshot(), a.paused)
}

func (a *App) dispatch() {
	events := a.sim.Events().Consume()
	logEvents(log.Default(), events)
	if a.sounds == nil {
		return
	}
	for _, e := range events {
		if st, ok := audio.SoundForEvent(e.Type); ok {
			if err := a.sounds.Play(st); err != nil {
				log.Printf("sound %v: %v", st, err)
			}
		}
	}
}

// run blocks until a quit key; quit is only observed between frames
func (a *App) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	a.renderer.RenderFrame(a.sim.Snapshot(), a.paused)
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.step()
		}
	}
}
