package controls

import (
	"fmt"

	"bounce-demo/internal/sim"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English)

// Title capitalizes an enum name for display ("strobe" becomes "Strobe").
func Title(s string) string {
	return titler.String(s)
}

// HelpLines is the key reference printed on 'h'.
func HelpLines() []string {
	return []string{
		"======== Bouncing Object Simulation ========",
		"Space / Enter / F5 / Home: restart",
		"c: next color          C: rainbow mode",
		"p: trajectory none / line / strobe",
		"G / g: gravity up / down",
		"e: particle effects    r: restore defaults",
		"1 / 2 / 3 (or keypad): cube / sphere / bunny",
		"s: Phong / Gouraud     o: toggle next light term",
		"l: light follows object  m: plastic / metallic",
		"i: next texture        t: wireframe / shading / texture",
		"z / w: zoom in / out   x / v: object smaller / bigger",
		"b: background color    + / - (or keypad): speed up / down",
		"n: single / multiple objects  k: launch object",
		"y: grid none / basic / detailed  F12: screenshot",
		"Mouse: left wireframe, right next object, middle restart",
		"h / F1: this help      ` : command terminal",
		"q / Esc: quit",
	}
}

// HUDLines is the on-screen status block drawn by the window host.
func HUDLines(s *sim.State, d Display) []string {
	mode := "Single object"
	if s.Multi() {
		mode = fmt.Sprintf("Multiple objects (%d)", len(s.Objects()))
	}
	particles := "off"
	if s.ParticlesEnabled() {
		particles = fmt.Sprintf("on (%d)", len(s.Particles()))
	}
	return []string{
		fmt.Sprintf("Mode: %s", mode),
		fmt.Sprintf("Object: %s  Render: %s  Trail: %s", Title(d.Object.String()), Title(d.RenderMode.String()), Title(d.Trajectory.String())),
		fmt.Sprintf("Shading: %s  Material: %s  Grid: %s", Title(d.ShadingName()), Title(d.MaterialName()), Title(d.Grid.String())),
		fmt.Sprintf("Speed: %.1fx  Gravity: %.2f  Time: %.1fs", s.Speed(), s.Gravity(), s.Time()),
		fmt.Sprintf("Particles: %s  Integration: %s", particles, s.Integration()),
	}
}
