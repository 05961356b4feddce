package tui

import (
	"bounce-demo/internal/controls"

	"github.com/gdamore/tcell/v2"
)

// Input translates terminal events into control actions. It remembers the mouse
// button state so a held button fires once.
type Input struct {
	buttons tcell.ButtonMask
}

// Action returns the control action for ev, or controls.None.
func (in *Input) Action(ev tcell.Event) controls.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return actionForKey(ev)
	case *tcell.EventMouse:
		return in.mouse(ev)
	}
	return controls.None
}

func actionForKey(ev *tcell.EventKey) controls.Action {
	switch ev.Key() {
	case tcell.KeyRune:
		return controls.ForRune(ev.Rune())
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return controls.Quit
	}
	return controls.ForKey(namedKeys[ev.Key()])
}

// namedKeys covers what a terminal reports; keypad keys arrive as plain runes.
var namedKeys = map[tcell.Key]controls.Key{
	tcell.KeyEnter: controls.KeyEnter,
	tcell.KeyHome:  controls.KeyHome,
	tcell.KeyF1:    controls.KeyF1,
	tcell.KeyF5:    controls.KeyF5,
	tcell.KeyF12:   controls.KeyF12,
}

func (in *Input) mouse(ev *tcell.EventMouse) controls.Action {
	pressed := ev.Buttons() &^ in.buttons
	in.buttons = ev.Buttons()
	switch {
	case pressed&tcell.Button1 != 0:
		return controls.ToggleWireframe
	case pressed&tcell.Button2 != 0:
		return controls.CycleObject
	case pressed&tcell.Button3 != 0:
		return controls.Restart
	}
	return controls.None
}
