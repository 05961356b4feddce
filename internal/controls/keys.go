package controls

// Key names a non-character key. Hosts translate their own key codes to these.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyHome
	KeyF1
	KeyF5
	KeyF12
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKpAdd
	KeyKpSubtract
)

var keyActions = map[Key]Action{
	KeyEnter:      Restart,
	KeyHome:       Restart,
	KeyF5:         Restart,
	KeyF1:         Help,
	KeyF12:        Screenshot,
	KeyKp1:        SelectCube,
	KeyKp2:        SelectSphere,
	KeyKp3:        SelectBunny,
	KeyKpAdd:      SpeedUp,
	KeyKpSubtract: SpeedDown,
}

// keypadEcho is the character a keypad key also types on hosts that report both.
var keypadEcho = map[Key]rune{
	KeyKp1:        '1',
	KeyKp2:        '2',
	KeyKp3:        '3',
	KeyKpAdd:      '+',
	KeyKpSubtract: '-',
}

// ForKey maps a named key to its action, or None.
func ForKey(k Key) Action {
	return keyActions[k]
}

// Echo returns the character k also produces as typed text, or 0. A host that sees
// both the key press and the character in one frame drops the character.
func (k Key) Echo() rune {
	return keypadEcho[k]
}
