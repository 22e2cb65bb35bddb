// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelgrid-demo/main.go
// Summary: Demo opening two windows of grid-laid-out blocks and labels.
// Usage: texelgrid-demo [-fps N] [-log file]; texelgrid-demo -headless -duration 2s
// prints the first window once the run ends. Escape in a window closes it,
// clicking a block toggles its linked widget.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/framegrace/texelgrid/config"
	"github.com/framegrace/texelgrid/engine"
	"github.com/framegrace/texelgrid/internal/winstate"
	"github.com/framegrace/texelgrid/render"
	"github.com/framegrace/texelgrid/widget"
	"github.com/framegrace/texelgrid/widgets"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texelgrid-demo", flag.ContinueOnError)
	logPath := fs.String("log", "texelgrid.log", "Log file (the terminal belongs to the UI)")
	fps := fs.Int("fps", -1, "Override engine.frame_rate (0 disables animation ticks)")
	headless := fs.Bool("headless", false, "Render into simulation screens and print the first window")
	duration := fs.Duration("duration", 2*time.Second, "How long a headless run lasts")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logFile, err := setupLogging(*logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	if !*headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use -headless")
	}

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Demo: config: %v (using defaults)", err)
	}
	opts, err := engine.OptionsFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *fps >= 0 {
		opts.FrameRate = *fps
	}
	if *headless {
		opts.Screens = engine.SimulationScreenFactory(
			cfg.GetInt("window", "width", 80),
			cfg.GetInt("window", "height", 24),
		)
	}
	if cfg.GetBool("window", "persist_state", false) {
		store, err := openStates()
		if err != nil {
			log.Printf("Demo: window state disabled: %v", err)
		} else {
			defer store.Close()
			opts.States = store
		}
	}

	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	defer e.Close()

	first, err := e.CreateWindow("blocks")
	if err != nil {
		return err
	}
	if err := first.SetRoot(blockGrid(e)); err != nil {
		return err
	}
	second, err := e.CreateWindow("layout")
	if err != nil {
		// A real terminal only hosts one screen; keep going with the first.
		log.Printf("Demo: second window unavailable: %v", err)
	} else if err := second.SetRoot(layoutGrid(e)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *headless {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}
	go animate(ctx, e)

	if err := e.Run(ctx); err != nil {
		return err
	}
	if *headless && !first.Closed() {
		dump(os.Stdout, first)
	}
	return nil
}

func setupLogging(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}

func openStates() (*winstate.Store, error) {
	path, err := winstate.DefaultPath()
	if err != nil {
		return nil, err
	}
	return winstate.Open(path)
}

// blockGrid is a 4x4 grid of shaded blocks. Each block's anchors follow its
// position, so every anchor combination shows up once. The first column's
// blocks hide and show the last column's.
func blockGrid(e *engine.Engine) widget.Widget {
	g := widget.NewGrid()
	g.SetAnchors(widget.NSEW)
	var cells [4][4]*widgets.Block
	for row := range 4 {
		g.SetRowWeight(row, 1)
		for col := range 4 {
			g.SetColWeight(col, 1)
			b := widgets.NewBlock(render.RGB(0, uint8(32+64*row), uint8(32+64*col)), e)
			b.SetMinSize(6, 2)
			b.SetPadding(widget.NSEW, 1)
			b.SetAnchors(widget.Direction(col<<2 | row))
			if row == 0 {
				b.Animate = true
				b.Caption = fmt.Sprintf("%d", col)
			}
			g.Attach(b, row, col, 1, 1)
			cells[row][col] = b
		}
	}
	for row := range 4 {
		cells[row][0].SetLinked(cells[row][3])
	}
	return g
}

// layoutGrid mixes labels and spanning blocks.
func layoutGrid(e *engine.Engine) widget.Widget {
	g := widget.NewGrid()
	g.SetAnchors(widget.NSEW)

	title := widgets.NewLabel("texelgrid: Esc closes, click toggles", render.White)
	g.Attach(title, 0, 0, 1, 3)

	tall := widgets.NewBlock(render.RGB(160, 64, 0), e)
	tall.SetAnchors(widget.NSEW)
	tall.SetMinSize(8, 4)
	tall.Caption = "tall"
	g.Attach(tall, 1, 0, 2, 1)

	wide := widgets.NewBlock(render.RGB(64, 0, 160), e)
	wide.SetAnchors(widget.NSEW)
	wide.SetMinSize(16, 2)
	wide.Caption = "wide"
	wide.Animate = true
	g.Attach(wide, 1, 1, 1, 2)

	note := widgets.NewLabel("日本語 labels measure by display width", render.RGB(255, 255, 0))
	g.Attach(note, 2, 1, 1, 2)

	inner := widget.NewGrid()
	inner.SetAnchors(widget.NSEW)
	for i := range 3 {
		b := widgets.NewBlock(render.RGB(uint8(80*i), 128, 64), e)
		b.SetAnchors(widget.NSEW)
		b.SetMinSize(4, 1)
		inner.Attach(b, 0, i, 1, 1)
		inner.SetColWeight(i, i+1)
	}
	inner.SetRowWeight(0, 1)
	g.Attach(inner, 3, 0, 1, 3)

	tall.SetLinked(note)
	wide.SetLinked(inner)

	g.SetColWeight(0, 1)
	g.SetColWeight(1, 2)
	g.SetColWeight(2, 1)
	g.SetRowWeight(1, 1)
	g.SetRowWeight(2, 1)
	g.SetRowWeight(3, 2)
	return g
}

// animate steps the animated blocks ten times a second.
func animate(ctx context.Context, e *engine.Engine) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.Post(engine.NewUserEvent(0, widgets.StepCode, nil)); err != nil {
				return
			}
		}
	}
}

// dump writes the presented contents of a simulation-backed window.
func dump(w io.Writer, win *engine.Window) {
	sim, ok := engine.Simulation(win.Driver())
	if !ok {
		return
	}
	cells, width, height := sim.GetContents()
	var sb strings.Builder
	for y := range height {
		for x := range width {
			cell := cells[y*width+x]
			switch {
			case len(cell.Runes) == 0:
				sb.WriteByte(' ')
			case cell.Runes[0] == 0:
			default:
				sb.WriteString(string(cell.Runes))
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}
