package input

import "fmt"

// Key identifies a physical keyboard key. Values match GLFW key codes so the
// window layer can convert without a lookup table.
type Key int

const (
	KeyUnknown Key = -1

	KeySpace  Key = 32
	KeyA      Key = 65
	KeyD      Key = 68
	KeyF      Key = 70
	KeyR      Key = 82
	KeyS      Key = 83
	KeyW      Key = 87
	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265
	KeyHome   Key = 268
	KeyF1     Key = 290
	KeyF11    Key = 300
)

var keyNames = map[Key]string{
	KeySpace:  "Space",
	KeyA:      "A",
	KeyD:      "D",
	KeyF:      "F",
	KeyR:      "R",
	KeyS:      "S",
	KeyW:      "W",
	KeyEscape: "Escape",
	KeyRight:  "Right",
	KeyLeft:   "Left",
	KeyDown:   "Down",
	KeyUp:     "Up",
	KeyHome:   "Home",
	KeyF1:     "F1",
	KeyF11:    "F11",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
