// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/options.go
// Summary: Engine options, screen factories and mapping from the config store.

package engine

import (
	"fmt"
	"strings"

	"github.com/framegrace/texelgrid/config"
	"github.com/framegrace/texelgrid/internal/winstate"
	"github.com/framegrace/texelgrid/render"
	"github.com/gdamore/tcell/v2"
)

const (
	// DefaultQueueSize is the event queue capacity used when none is set.
	DefaultQueueSize = 256
	// MaxFrameRate caps the animation tick rate.
	MaxFrameRate = 240
)

// ScreenFactory opens the surface backing a new window.
type ScreenFactory func(title string) (render.ScreenDriver, error)

// StateStore persists per-window preferences keyed by window title.
type StateStore interface {
	Load(title string) (winstate.State, bool, error)
	Save(title string, st winstate.State) error
}

// Options configure an Engine.
type Options struct {
	// FrameRate is the number of AnimateEvent ticks per second; 0 disables them.
	FrameRate int
	// QueueSize bounds the event queue.
	QueueSize int
	// FullscreenKey toggles fullscreen on the window it is pressed in. The
	// zero key disables the binding.
	FullscreenKey tcell.Key
	// Background is the initial background of new windows.
	Background render.Color
	// Screens opens window surfaces; DefaultScreenFactory when nil.
	Screens ScreenFactory
	// States restores and saves window preferences; nil disables persistence.
	States StateStore
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		QueueSize:     DefaultQueueSize,
		FullscreenKey: tcell.KeyF11,
		Background:    render.Magenta,
		Screens:       DefaultScreenFactory,
	}
}

func (o Options) withDefaults() Options {
	if o.QueueSize <= 0 {
		o.QueueSize = DefaultQueueSize
	}
	if o.Screens == nil {
		o.Screens = DefaultScreenFactory
	}
	if o.Background == (render.Color{}) {
		o.Background = render.Magenta
	}
	o.FrameRate = clampFrameRate(o.FrameRate)
	return o
}

func clampFrameRate(fps int) int {
	return min(max(fps, 0), MaxFrameRate)
}

// OptionsFromConfig maps the engine and window sections of cfg onto Options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	opts := DefaultOptions()
	opts.FrameRate = clampFrameRate(cfg.GetInt("engine", "frame_rate", opts.FrameRate))
	opts.QueueSize = cfg.GetInt("engine", "queue_size", opts.QueueSize)

	key, err := ParseKey(cfg.GetString("engine", "fullscreen_key", "F11"))
	if err != nil {
		return opts, fmt.Errorf("engine.fullscreen_key: %w", err)
	}
	opts.FullscreenKey = key

	bg, err := render.ParseHex(cfg.GetString("window", "background", render.Magenta.Hex()))
	if err != nil {
		return opts, fmt.Errorf("window.background: %w", err)
	}
	opts.Background = bg
	return opts, nil
}

// ParseKey resolves a tcell key name such as "F11" or "Ctrl-F". An empty
// name or "none" yields the zero key.
func ParseKey(name string) (tcell.Key, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "none") {
		return 0, nil
	}
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// DefaultScreenFactory opens the controlling terminal. Only one terminal
// window can be open at a time.
func DefaultScreenFactory(string) (render.ScreenDriver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return render.NewTcellScreenDriver(screen), nil
}

// SimulationScreenFactory opens in-memory screens of the given size, for
// tests and headless runs.
func SimulationScreenFactory(width, height int) ScreenFactory {
	return func(string) (render.ScreenDriver, error) {
		sim := tcell.NewSimulationScreen("UTF-8")
		return &simulationDriver{
			TcellScreenDriver: render.NewTcellScreenDriver(sim),
			sim:               sim,
			width:             width,
			height:            height,
		}, nil
	}
}

type simulationDriver struct {
	*render.TcellScreenDriver
	sim           tcell.SimulationScreen
	width, height int
}

func (d *simulationDriver) Init() error {
	if err := d.TcellScreenDriver.Init(); err != nil {
		return err
	}
	d.sim.SetSize(d.width, d.height)
	return nil
}

// SetFullscreen has no surface to switch; it only accepts the request.
func (d *simulationDriver) SetFullscreen(bool) error { return nil }

// Simulation returns the simulation screen behind a driver opened by
// SimulationScreenFactory.
func Simulation(drv render.ScreenDriver) (tcell.SimulationScreen, bool) {
	if d, ok := drv.(*simulationDriver); ok {
		return d.sim, true
	}
	return nil, false
}
