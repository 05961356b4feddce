package terminal

import (
	"unicode/utf8"

	"bounce-demo/internal/commands"
	"bounce-demo/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the terminal is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	// Reused every frame when drawing the terminal bar to avoid per-frame color allocations.
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the command bar at the bottom of the window, toggled with the grave key (`).
// While open it captures the keyboard so simulation keys are not triggered.
// Lines starting with "cmd " are parsed as subcommand + flags and run through the registry;
// anything else is only logged.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     *rl.Font
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// SetFont draws the log and the input bar with f.
func (t *Terminal) SetFont(f rl.Font) { t.font = &f }

func (t *Terminal) text(s string, x, y int, c rl.Color) {
	if t.font == nil {
		rl.DrawText(s, int32(x), int32(y), fontSize, c)
		return
	}
	rl.DrawTextEx(*t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
}

// IsOpen returns true when the terminal is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Close hides the terminal and drops the partial input.
func (t *Terminal) Close() {
	t.open = false
	t.inputBuf = ""
}

// Update handles the toggle key, and when open: typing, paste, backspace, enter. Call once per frame.
// It reports whether the terminal consumed this frame's keyboard input.
func (t *Terminal) Update() bool {
	if rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		// Drain the toggle character so it does not land in the input.
		for rl.GetCharPressed() != 0 {
		}
		return true
	}
	if !t.open {
		return false
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		t.Submit(t.inputBuf)
		t.inputBuf = ""
	}
	return true
}

// Submit logs line and, when it is a "cmd ..." line, executes it.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the terminal bar at the bottom when open, and the recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.text(line, padding, y, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}
