package main

import (
	"bounce-demo/internal/controls"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// namedKeys are the non-character keys, checked in this order every frame.
var namedKeys = []struct {
	code int32
	key  controls.Key
}{
	{rl.KeyEnter, controls.KeyEnter},
	{rl.KeyKpEnter, controls.KeyEnter},
	{rl.KeyF5, controls.KeyF5},
	{rl.KeyHome, controls.KeyHome},
	{rl.KeyF1, controls.KeyF1},
	{rl.KeyF12, controls.KeyF12},
	{rl.KeyKp1, controls.KeyKp1},
	{rl.KeyKp2, controls.KeyKp2},
	{rl.KeyKp3, controls.KeyKp3},
	{rl.KeyKpAdd, controls.KeyKpAdd},
	{rl.KeyKpSubtract, controls.KeyKpSubtract},
}

var mouseActions = []struct {
	button rl.MouseButton
	act    controls.Action
}{
	{rl.MouseButtonLeft, controls.ToggleWireframe},
	{rl.MouseButtonRight, controls.CycleObject},
	{rl.MouseButtonMiddle, controls.Restart},
}

// pollActions collects this frame's actions: named keys, typed characters, then mouse
// presses. Characters echoed by a keypad key pressed this frame are skipped.
func pollActions() []controls.Action {
	var acts []controls.Action
	echoed := map[rune]bool{}
	for _, k := range namedKeys {
		if !rl.IsKeyPressed(k.code) {
			continue
		}
		acts = append(acts, controls.ForKey(k.key))
		if r := k.key.Echo(); r != 0 {
			echoed[r] = true
		}
	}
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		r := rune(c)
		if echoed[r] {
			delete(echoed, r)
			continue
		}
		if a := controls.ForRune(r); a != controls.None {
			acts = append(acts, a)
		}
	}
	for _, m := range mouseActions {
		if rl.IsMouseButtonPressed(m.button) {
			acts = append(acts, m.act)
		}
	}
	return acts
}
