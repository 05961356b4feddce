package tui

import (
	"strings"
	"testing"

	"bounce-demo/internal/controls"
	"bounce-demo/internal/random"
	"bounce-demo/internal/sim"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawTrackedObject(t *testing.T) {
	screen := newScreen(t, 80, 25)
	s := sim.New(sim.DefaultConfig(), random.New(3))
	for i := 0; i < 20; i++ {
		s.Tick(1.0 / 60)
	}
	d := controls.DefaultDisplay()
	r := NewRenderer(screen)
	r.Draw(s, d)

	col, row, ok := r.Grid(s).Cell(s.Position())
	if !ok {
		t.Fatalf("tracked object at %v is off the grid", s.Position())
	}
	if got, _, _, _ := screen.GetContent(col, row); got != objectRunes[sim.Sphere] {
		t.Fatalf("cell (%d,%d) = %q, want sphere glyph", col, row, got)
	}

	status := rowText(screen, 24)
	if !strings.HasPrefix(status, "Single Sphere x1") {
		t.Fatalf("status line = %q", status)
	}
}

func TestDrawFloor(t *testing.T) {
	screen := newScreen(t, 40, 21)
	s := sim.New(sim.DefaultConfig(), random.New(3))
	r := NewRenderer(screen)
	r.Draw(s, controls.DefaultDisplay())

	g := r.Grid(s)
	floor := g.Row(s.Bounds().Floor)
	line := rowText(screen, floor)
	if !strings.ContainsRune(line, FloorRune) {
		t.Fatalf("floor row %d = %q", floor, line)
	}
	if got, _, _, _ := screen.GetContent(g.Col(s.Bounds().Left), 0); got != WallRune {
		t.Fatalf("left wall = %q", got)
	}
}

func TestDrawMultiObjects(t *testing.T) {
	screen := newScreen(t, 80, 25)
	cfg := sim.DefaultConfig()
	cfg.Spawn.Auto = false
	s := sim.New(cfg, random.New(5))
	s.SetMode(true)
	obj, ok := s.Spawn()
	if !ok {
		t.Fatal("Spawn failed in multi mode")
	}
	r := NewRenderer(screen)
	r.SetMessage("hello")
	r.Draw(s, controls.DefaultDisplay())

	col, row, ok := r.Grid(s).Cell(obj.Position)
	if !ok {
		t.Fatalf("spawned object at %v is off the grid", obj.Position)
	}
	if got, _, _, _ := screen.GetContent(col, row); got != objectRunes[obj.Type] {
		t.Fatalf("cell (%d,%d) = %q, want %q", col, row, got, objectRunes[obj.Type])
	}
	status := rowText(screen, 24)
	if !strings.HasPrefix(status, "Multi") || !strings.Contains(status, "| hello") {
		t.Fatalf("status line = %q", status)
	}
}

func TestStrobeSkipsSamples(t *testing.T) {
	screen := newScreen(t, 160, 60)
	s := sim.New(sim.DefaultConfig(), random.New(1))
	for i := 0; i < 120; i++ {
		s.Tick(1.0 / 60)
	}
	d := controls.DefaultDisplay()
	d.Trajectory = controls.TrajectoryStrobe
	NewRenderer(screen).Draw(s, d)

	trail, strobe := 0, 0
	for y := 0; y < 59; y++ {
		for _, r := range rowText(screen, y) {
			switch r {
			case TrailRune:
				trail++
			case StrobeRune:
				strobe++
			}
		}
	}
	if trail != 0 || strobe == 0 {
		t.Fatalf("strobe mode drew %d trail and %d strobe marks", trail, strobe)
	}
}

func TestInputKeys(t *testing.T) {
	var in Input
	tests := []struct {
		ev   tcell.Event
		want controls.Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), controls.NextColor},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), controls.Quit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), controls.Quit},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), controls.Restart},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), controls.Restart},
		{tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), controls.Screenshot},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), controls.Help},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), controls.None},
	}
	for _, tt := range tests {
		if got := in.Action(tt.ev); got != tt.want {
			t.Errorf("Action(%v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestInputMouseFiresOnPress(t *testing.T) {
	var in Input
	press := tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)
	if got := in.Action(press); got != controls.ToggleWireframe {
		t.Fatalf("left press = %v", got)
	}
	if got := in.Action(press); got != controls.None {
		t.Fatalf("held left button = %v, want None", got)
	}
	in.Action(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	if got := in.Action(tcell.NewEventMouse(1, 1, tcell.Button3, tcell.ModNone)); got != controls.Restart {
		t.Fatalf("middle press = %v", got)
	}
	if got := in.Action(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone)); got != controls.CycleObject {
		t.Fatalf("right press = %v", got)
	}
}
