// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/engine_test.go
// Summary: Window lifecycle, rooting, focus, dirty-flag passes and the main loop against simulation screens.

package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/framegrace/texelgrid/internal/winstate"
	"github.com/framegrace/texelgrid/render"
	"github.com/framegrace/texelgrid/widget"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

// recorder is a container widget that notes what the engine does to it.
type recorder struct {
	*widget.Node
	name     string
	trace    *[]string
	children []widget.Widget

	handles bool
	accepts bool
	onEvent func(tcell.Event)
	drawErr error

	lost    int
	draws   int
	resizes int
	renders []*render.Canvas
}

func newRecorder(name string, trace *[]string) *recorder {
	p := &recorder{name: name, trace: trace}
	p.Node = widget.NewNode(p)
	return p
}

func (p *recorder) add(children ...widget.Widget) *recorder {
	for _, c := range children {
		if widget.Claim(p, c) {
			p.children = append(p.children, c)
		}
	}
	return p
}

func (p *recorder) HasChildren() bool { return len(p.children) > 0 }

func (p *recorder) HasChild(c widget.Widget) bool {
	for _, o := range p.children {
		if o == c {
			return true
		}
	}
	return false
}

func (p *recorder) FirstChild(prune widget.Widget) widget.Widget { return p.from(0, prune) }

func (p *recorder) NextChild(after, prune widget.Widget) widget.Widget {
	if after == nil {
		return p.from(0, prune)
	}
	for i, c := range p.children {
		if c == after {
			return p.from(i+1, prune)
		}
	}
	return nil
}

func (p *recorder) from(i int, prune widget.Widget) widget.Widget {
	for ; i < len(p.children); i++ {
		if p.children[i] != prune {
			return p.children[i]
		}
	}
	return nil
}

func (p *recorder) RenderUpdate(c *render.Canvas) { p.renders = append(p.renders, c) }

func (p *recorder) Resize(*render.Canvas) { p.resizes++ }

func (p *recorder) Draw(c *render.Canvas) error {
	p.draws++
	if p.drawErr != nil {
		return p.drawErr
	}
	for _, ch := range p.children {
		if err := ch.Draw(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *recorder) TakeFocus(*render.Canvas) bool { return p.accepts }
func (p *recorder) LoseFocus(*render.Canvas)      { p.lost++ }

func (p *recorder) HandleEvent(_ *render.Canvas, ev tcell.Event) bool {
	if p.trace != nil {
		*p.trace = append(*p.trace, p.name)
	}
	if p.onEvent != nil {
		p.onEvent(ev)
	}
	return p.handles
}

func (p *recorder) lastRender() *render.Canvas {
	if len(p.renders) == 0 {
		return nil
	}
	return p.renders[len(p.renders)-1]
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Screens == nil {
		opts.Screens = SimulationScreenFactory(20, 5)
	}
	e, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func mustWindow(t *testing.T, e *Engine, title string) *Window {
	t.Helper()
	w, err := e.CreateWindow(title)
	if err != nil {
		t.Fatalf("CreateWindow(%q): %v", title, err)
	}
	return w
}

func runAsync(e *Engine, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()
	return done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return")
		return nil
	}
}

func TestOnlyOneEngineAtATime(t *testing.T) {
	e, err := New(Options{Screens: SimulationScreenFactory(4, 4)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New(Options{}); !errors.Is(err, ErrEngineExists) {
		t.Fatalf("second New error = %v, want ErrEngineExists", err)
	}
	e.Close()
	e.Close()

	e2, err := New(Options{})
	if err != nil {
		t.Fatalf("New after Close: %v", err)
	}
	e2.Close()
}

func TestCreateWindowDefaults(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	w2 := mustWindow(t, e, "two")

	if w.ID() == 0 || w2.ID() == w.ID() {
		t.Fatalf("ids %d and %d should be distinct and non-zero", w.ID(), w2.ID())
	}
	if got := w.Bounds(); got != (render.Rect{W: 20, H: 5}) {
		t.Fatalf("bounds = %+v", got)
	}
	if resize, redraw := w.Pending(); !resize || !redraw {
		t.Fatalf("new window pending = %v, %v", resize, redraw)
	}
	if w.Background() != render.Magenta {
		t.Fatalf("background = %+v, want magenta", w.Background())
	}
	if w.Root() != nil || w.Focus() != nil {
		t.Fatalf("new window should be empty")
	}
	if e.Window(w2.ID()) != w2 || e.Window(999) != nil {
		t.Fatalf("Window lookup mismatch")
	}
	if _, ok := Simulation(w.Driver()); !ok {
		t.Fatalf("driver is not a simulation screen")
	}
	if got := len(e.Windows()); got != 2 {
		t.Fatalf("windows = %d, want 2", got)
	}
}

func TestCreateWindowWrapsScreenErrors(t *testing.T) {
	boom := errors.New("no display")
	e := newTestEngine(t, Options{Screens: func(string) (render.ScreenDriver, error) { return nil, boom }})
	_, err := e.CreateWindow("broken")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapping %v", err, boom)
	}
	var rerr *render.Error
	if !errors.As(err, &rerr) || rerr.Op != "OpenScreen" {
		t.Fatalf("error = %v, want a render.Error for OpenScreen", err)
	}
	if len(e.Windows()) != 0 {
		t.Fatalf("failed window was registered")
	}
}

func TestSetRootExclusivity(t *testing.T) {
	e := newTestEngine(t, Options{})
	w1 := mustWindow(t, e, "one")
	w2 := mustWindow(t, e, "two")

	root := newRecorder("root", nil)
	child := newRecorder("child", nil)
	root.add(child)

	if err := w1.SetRoot(child); !errors.Is(err, widget.ErrHasParent) {
		t.Fatalf("rooting a child: %v, want ErrHasParent", err)
	}
	if err := w1.SetRoot(root); err != nil {
		t.Fatalf("SetRoot: %v", err)
	}
	if err := w2.SetRoot(root); !errors.Is(err, widget.ErrAlreadyRooted) {
		t.Fatalf("rooting in a second window: %v, want ErrAlreadyRooted", err)
	}
	if err := w1.SetRoot(root); err != nil {
		t.Fatalf("re-rooting in the same window: %v", err)
	}
	if e.WindowOf(child) != w1 {
		t.Fatalf("WindowOf(child) should be the first window")
	}
	if root.lastRender() != w1.Canvas() || child.lastRender() != w1.Canvas() {
		t.Fatalf("tree did not receive the window canvas")
	}
}

func TestClaimIntoShownTreeSendsRenderUpdate(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	root := newRecorder("root", nil)
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	late := newRecorder("late", nil)
	leaf := newRecorder("leaf", nil)
	late.add(leaf)
	root.add(late)
	if late.lastRender() != w.Canvas() || leaf.lastRender() != w.Canvas() {
		t.Fatalf("claimed subtree did not receive RenderUpdate")
	}
}

func TestReplacingRootDetachesOld(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	old := newRecorder("old", nil)
	old.accepts = true
	if err := w.SetRoot(old); err != nil {
		t.Fatal(err)
	}
	if err := e.SetFocus(old); err != nil {
		t.Fatal(err)
	}

	next := newRecorder("next", nil)
	if err := w.SetRoot(next); err != nil {
		t.Fatal(err)
	}
	if old.lost != 1 || w.Focus() != nil {
		t.Fatalf("old root lost=%d focus=%v", old.lost, w.Focus())
	}
	if len(old.renders) == 0 || old.lastRender() != nil {
		t.Fatalf("old root should get RenderUpdate(nil)")
	}
	if widget.HostOf(old) != nil {
		t.Fatalf("old root still rooted")
	}
	// The old root is free to be shown elsewhere.
	w2 := mustWindow(t, e, "two")
	if err := w2.SetRoot(old); err != nil {
		t.Fatalf("re-root old: %v", err)
	}
	if err := w.SetRoot(nil); err != nil || w.Root() != nil {
		t.Fatalf("clearing root: %v", err)
	}
}

func TestSetRootOnRemovedWindow(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	root := newRecorder("root", nil)
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	e.RemoveWindow(w)
	if !w.Closed() || len(e.Windows()) != 0 {
		t.Fatalf("window not removed")
	}
	if root.lastRender() != nil {
		t.Fatalf("root should have been told the canvas is gone")
	}
	if err := w.SetRoot(newRecorder("x", nil)); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("SetRoot on removed window: %v", err)
	}
	if err := w.SetFullscreen(true); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("SetFullscreen on removed window: %v", err)
	}
	if err := e.SetFocus(root); !errors.Is(err, ErrNotShown) {
		t.Fatalf("SetFocus on detached widget: %v", err)
	}
}

func TestFocusWalksUpToAcceptingAncestor(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	root := newRecorder("root", nil)
	panel := newRecorder("panel", nil)
	leaf := newRecorder("leaf", nil)
	panel.accepts = true
	root.add(panel.add(leaf))
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}

	if err := e.SetFocus(leaf); err != nil {
		t.Fatal(err)
	}
	if w.Focus() != widget.Widget(panel) {
		t.Fatalf("focus = %v, want panel", w.Focus())
	}
	if leaf.lost != 0 {
		t.Fatalf("rejecting widget was told it lost focus")
	}

	// Refocusing the holder is a no-op.
	if err := e.SetFocus(panel); err != nil {
		t.Fatal(err)
	}
	if panel.lost != 0 {
		t.Fatalf("refocus notified the holder")
	}

	// Nobody above root accepts: the old holder is notified and focus is empty.
	if err := e.SetFocus(root); err != nil {
		t.Fatal(err)
	}
	if panel.lost != 1 || w.Focus() != nil {
		t.Fatalf("panel lost=%d focus=%v", panel.lost, w.Focus())
	}
}

func TestDetachedFocusHolderLosesFocus(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	var trace []string
	g := widget.NewGrid()
	leaf := newRecorder("leaf", &trace)
	leaf.accepts = true
	g.Attach(leaf, 0, 0, 1, 1)
	if err := w.SetRoot(g); err != nil {
		t.Fatal(err)
	}
	if err := e.SetFocus(leaf); err != nil {
		t.Fatal(err)
	}
	if w.Focus() != widget.Widget(leaf) {
		t.Fatalf("focus = %v, want leaf", w.Focus())
	}

	g.Detach(leaf)
	deliver(w, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if len(trace) != 0 {
		t.Fatalf("detached widget received events: %v", trace)
	}
	if w.Focus() != nil {
		t.Fatalf("focus = %v after detach, want none", w.Focus())
	}
	if leaf.lost != 1 {
		t.Fatalf("detached holder lost=%d, want 1", leaf.lost)
	}
}

func TestFlushRunsOwedPasses(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	root := newRecorder("root", nil)
	root.SetAnchors(widget.NSEW)
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}

	if err := e.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if root.resizes != 1 || root.draws != 1 {
		t.Fatalf("resizes=%d draws=%d, want 1 and 1", root.resizes, root.draws)
	}
	if root.DrawRect() != w.Bounds() {
		t.Fatalf("root rect %+v, want %+v", root.DrawRect(), w.Bounds())
	}
	if resize, redraw := w.Pending(); resize || redraw {
		t.Fatalf("flags not cleared: %v, %v", resize, redraw)
	}

	if err := e.flush(); err != nil {
		t.Fatal(err)
	}
	if root.draws != 1 {
		t.Fatalf("clean window redrawn")
	}

	e.RequestRedraw(root)
	if err := e.flush(); err != nil {
		t.Fatal(err)
	}
	if root.resizes != 1 || root.draws != 2 {
		t.Fatalf("redraw only: resizes=%d draws=%d", root.resizes, root.draws)
	}

	root.SetVisible(false)
	e.RequestResize(root)
	if err := e.flush(); err != nil {
		t.Fatal(err)
	}
	if root.resizes != 1 || root.draws != 2 {
		t.Fatalf("hidden root was laid out or drawn")
	}
	if resize, _ := w.Pending(); resize {
		t.Fatalf("resize flag kept for hidden root")
	}
}

func TestFlushPaintsBackground(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	blue := render.RGB(0, 0, 255)
	w.SetBackground(blue)
	if err := e.flush(); err != nil {
		t.Fatal(err)
	}
	_, _, st, _ := w.Driver().GetContent(7, 3)
	_, bg, _ := st.Decompose()
	if got := render.FromTCell(bg); got != blue {
		t.Fatalf("background = %+v, want blue", got)
	}
}

func TestFlushReturnsDrawErrors(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "painter")
	boom := errors.New("paint failed")
	root := newRecorder("root", nil)
	root.drawErr = boom
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	err := e.flush()
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "painter") {
		t.Fatalf("flush error = %v", err)
	}
}

func TestProcessRouting(t *testing.T) {
	e := newTestEngine(t, Options{})
	var trace []string
	w1 := mustWindow(t, e, "one")
	w2 := mustWindow(t, e, "two")
	r1, r2 := newRecorder("r1", &trace), newRecorder("r2", &trace)
	r2.handles = true
	if err := w1.SetRoot(r1); err != nil {
		t.Fatal(err)
	}
	if err := w2.SetRoot(r2); err != nil {
		t.Fatal(err)
	}
	key := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)

	e.process(queued{win: 999, ev: key})
	if len(trace) != 0 {
		t.Fatalf("event for unknown window delivered: %v", trace)
	}

	e.process(queued{win: w2.ID(), ev: key})
	if diff := cmp.Diff([]string{"r2"}, trace); diff != "" {
		t.Fatalf("targeted delivery (-want +got):\n%s", diff)
	}

	trace = nil
	e.process(queued{ev: NewUserEvent(0, 1, nil)})
	if diff := cmp.Diff([]string{"r1", "r2"}, trace); diff != "" {
		t.Fatalf("broadcast (-want +got):\n%s", diff)
	}

	trace = nil
	r1.handles = true
	e.process(queued{ev: NewUserEvent(0, 1, nil)})
	if diff := cmp.Diff([]string{"r1"}, trace); diff != "" {
		t.Fatalf("broadcast stops at first handler (-want +got):\n%s", diff)
	}
}

func TestAnimateAndQuitAreNotRouted(t *testing.T) {
	e := newTestEngine(t, Options{})
	var trace []string
	w := mustWindow(t, e, "one")
	if err := w.SetRoot(newRecorder("root", &trace)); err != nil {
		t.Fatal(err)
	}
	if err := e.flush(); err != nil {
		t.Fatal(err)
	}

	root := w.Root().(*recorder)
	e.process(queued{ev: newAnimateEvent()})
	if resize, redraw := w.Pending(); resize || redraw {
		t.Fatalf("tick on a clean window scheduled passes: %v, %v", resize, redraw)
	}
	if err := e.flush(); err != nil {
		t.Fatal(err)
	}
	if root.draws != 1 {
		t.Fatalf("clean window redrawn on tick: draws=%d", root.draws)
	}

	// A request made between ticks is flushed after the next one.
	e.RequestRedraw(root)
	e.process(queued{ev: newAnimateEvent()})
	if err := e.flush(); err != nil {
		t.Fatal(err)
	}
	if root.draws != 2 {
		t.Fatalf("requested redraw not flushed: draws=%d", root.draws)
	}
	e.process(queued{ev: NewQuitEvent()})
	if !e.exit.Load() {
		t.Fatalf("quit event did not set the exit flag")
	}
	if len(trace) != 0 {
		t.Fatalf("engine events reached widgets: %v", trace)
	}
}

func TestFullscreenKeyToggles(t *testing.T) {
	opts := DefaultOptions()
	opts.Screens = SimulationScreenFactory(10, 3)
	e := newTestEngine(t, opts)
	var trace []string
	w := mustWindow(t, e, "one")
	if err := w.SetRoot(newRecorder("root", &trace)); err != nil {
		t.Fatal(err)
	}
	f11 := tcell.NewEventKey(tcell.KeyF11, 0, tcell.ModNone)

	e.process(queued{win: w.ID(), ev: f11})
	if !w.Fullscreen() {
		t.Fatalf("F11 did not enter fullscreen")
	}
	e.process(queued{win: w.ID(), ev: f11})
	if w.Fullscreen() {
		t.Fatalf("second F11 did not leave fullscreen")
	}
	if diff := cmp.Diff([]string{"root", "root"}, trace); diff != "" {
		t.Fatalf("key still routed to widgets (-want +got):\n%s", diff)
	}
}

func TestFullscreenKeyDisabled(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	e.process(queued{win: w.ID(), ev: tcell.NewEventKey(tcell.KeyF11, 0, tcell.ModNone)})
	if w.Fullscreen() {
		t.Fatalf("zero FullscreenKey should disable the binding")
	}
}

func TestResizeEventRebuildsCanvas(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	root := newRecorder("root", nil)
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	if err := e.flush(); err != nil {
		t.Fatal(err)
	}
	old := w.Canvas()

	sim, _ := Simulation(w.Driver())
	sim.SetSize(30, 8)
	e.process(queued{win: w.ID(), ev: tcell.NewEventResize(30, 8)})

	if w.Canvas() == old || !old.Released() {
		t.Fatalf("canvas not rebuilt")
	}
	if got := w.Bounds(); got != (render.Rect{W: 30, H: 8}) {
		t.Fatalf("bounds = %+v", got)
	}
	if root.lastRender() != w.Canvas() {
		t.Fatalf("root did not receive the new canvas")
	}
	if resize, redraw := w.Pending(); !resize || !redraw {
		t.Fatalf("pending = %v, %v after resize", resize, redraw)
	}
}

type memStates struct {
	stored map[string]winstate.State
	saved  []string
}

func (m *memStates) Load(title string) (winstate.State, bool, error) {
	st, ok := m.stored[title]
	return st, ok, nil
}

func (m *memStates) Save(title string, st winstate.State) error {
	m.stored[title] = st
	m.saved = append(m.saved, title)
	return nil
}

func TestWindowStateRestoredAndSaved(t *testing.T) {
	states := &memStates{stored: map[string]winstate.State{
		"known":  {Background: "#0000ff", Fullscreen: true},
		"broken": {Background: "not a colour"},
	}}
	e := newTestEngine(t, Options{States: states})

	known := mustWindow(t, e, "known")
	if known.Background() != render.RGB(0, 0, 255) || !known.Fullscreen() {
		t.Fatalf("state not restored: bg=%+v fullscreen=%v", known.Background(), known.Fullscreen())
	}
	broken := mustWindow(t, e, "broken")
	if broken.Background() != render.Magenta {
		t.Fatalf("bad stored background applied: %+v", broken.Background())
	}

	known.SetBackground(render.RGB(0, 255, 0))
	e.RemoveWindow(known)
	got := states.stored["known"]
	if got.Background != "#00ff00" || !got.Fullscreen {
		t.Fatalf("saved state = %+v", got)
	}
	if diff := cmp.Diff([]string{"known"}, states.saved); diff != "" {
		t.Fatalf("saves (-want +got):\n%s", diff)
	}
}

func TestRunStopsFromHandler(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	root := newRecorder("root", nil)
	var codes []int
	root.onEvent = func(ev tcell.Event) {
		if ue, ok := ev.(*UserEvent); ok {
			codes = append(codes, ue.Code)
			if ue.Code == 2 {
				e.Stop()
			}
		}
	}
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	if err := e.Post(NewUserEvent(w.ID(), 1, nil)); err != nil {
		t.Fatal(err)
	}
	if err := e.Post(NewUserEvent(w.ID(), 2, nil)); err != nil {
		t.Fatal(err)
	}
	if err := waitRun(t, runAsync(e, context.Background())); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	if root.draws == 0 {
		t.Fatalf("nothing drawn")
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	e := newTestEngine(t, Options{FrameRate: 60})
	mustWindow(t, e, "one")
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(e, ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	if err := waitRun(t, done); err != nil {
		t.Fatalf("Run after cancel: %v", err)
	}
}

func TestRunEndsWhenLastWindowCloses(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := mustWindow(t, e, "one")
	root := newRecorder("root", nil)
	root.onEvent = func(ev tcell.Event) {
		if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyEscape {
			e.RemoveWindowOf(root)
		}
	}
	if err := w.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	sim, _ := Simulation(w.Driver())
	done := runAsync(e, context.Background())
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := waitRun(t, done); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !w.Closed() || len(e.Windows()) != 0 {
		t.Fatalf("window still open")
	}
}

func TestRunWithoutWindowsReturns(t *testing.T) {
	e := newTestEngine(t, Options{})
	if err := waitRun(t, runAsync(e, context.Background())); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestClosedEngineRejectsWork(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.Close()
	if err := e.Run(context.Background()); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Run after Close: %v", err)
	}
	if err := e.Post(NewUserEvent(0, 1, nil)); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Post after Close: %v", err)
	}
	if _, err := e.CreateWindow("late"); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("CreateWindow after Close: %v", err)
	}
}

func TestSetFrameRateClamps(t *testing.T) {
	e := newTestEngine(t, Options{})
	for _, tt := range []struct{ in, want int }{{-5, 0}, {0, 0}, {30, 30}, {1000, MaxFrameRate}} {
		e.SetFrameRate(tt.in)
		if got := e.FrameRate(); got != tt.want {
			t.Errorf("SetFrameRate(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}
}
