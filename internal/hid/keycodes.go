package hid

// Usage codes from the USB HID keyboard/keypad page (0x07).
const (
	KeyNone uint8 = 0x00

	KeyA uint8 = 0x04
	KeyB uint8 = 0x05
	KeyC uint8 = 0x06
	KeyD uint8 = 0x07
	KeyE uint8 = 0x08
	KeyF uint8 = 0x09
	KeyG uint8 = 0x0a
	KeyH uint8 = 0x0b
	KeyI uint8 = 0x0c
	KeyJ uint8 = 0x0d
	KeyK uint8 = 0x0e
	KeyL uint8 = 0x0f
	KeyM uint8 = 0x10
	KeyN uint8 = 0x11
	KeyO uint8 = 0x12
	KeyP uint8 = 0x13
	KeyQ uint8 = 0x14
	KeyR uint8 = 0x15
	KeyS uint8 = 0x16
	KeyT uint8 = 0x17
	KeyU uint8 = 0x18
	KeyV uint8 = 0x19
	KeyW uint8 = 0x1a
	KeyX uint8 = 0x1b
	KeyY uint8 = 0x1c
	KeyZ uint8 = 0x1d

	Key1 uint8 = 0x1e
	Key2 uint8 = 0x1f
	Key3 uint8 = 0x20
	Key4 uint8 = 0x21
	Key5 uint8 = 0x22
	Key6 uint8 = 0x23
	Key7 uint8 = 0x24
	Key8 uint8 = 0x25
	Key9 uint8 = 0x26
	Key0 uint8 = 0x27

	KeyEnter      uint8 = 0x28
	KeyEscape     uint8 = 0x29
	KeyBackspace  uint8 = 0x2a
	KeyTab        uint8 = 0x2b
	KeySpace      uint8 = 0x2c
	KeyMinus      uint8 = 0x2d
	KeyEqual      uint8 = 0x2e
	KeyLeftBrace  uint8 = 0x2f
	KeyRightBrace uint8 = 0x30
	KeyBackslash  uint8 = 0x31
	KeySemicolon  uint8 = 0x33
	KeyApostrophe uint8 = 0x34
	KeyGrave      uint8 = 0x35
	KeyComma      uint8 = 0x36
	KeyDot        uint8 = 0x37
	KeySlash      uint8 = 0x38

	KeyF1  uint8 = 0x3a
	KeyF2  uint8 = 0x3b
	KeyF3  uint8 = 0x3c
	KeyF4  uint8 = 0x3d
	KeyF5  uint8 = 0x3e
	KeyF6  uint8 = 0x3f
	KeyF7  uint8 = 0x40
	KeyF8  uint8 = 0x41
	KeyF9  uint8 = 0x42
	KeyF10 uint8 = 0x43
	KeyF11 uint8 = 0x44
	KeyF12 uint8 = 0x45

	KeyPrintScreen uint8 = 0x46
	KeyInsert      uint8 = 0x49
	KeyHome        uint8 = 0x4a
	KeyPageUp      uint8 = 0x4b
	KeyDelete      uint8 = 0x4c
	KeyEnd         uint8 = 0x4d
	KeyPageDown    uint8 = 0x4e
	KeyRight       uint8 = 0x4f
	KeyLeft        uint8 = 0x50
	KeyDown        uint8 = 0x51
	KeyUp          uint8 = 0x52
)

// Modifier bits for the boot-report modifier byte.
const (
	ModLeftCtrl  uint8 = 0x01
	ModLeftShift uint8 = 0x02
	ModLeftAlt   uint8 = 0x04
	ModLeftGUI   uint8 = 0x08
	ModRightAlt  uint8 = 0x40
)

// namedCodes maps configuration keycode names to usage codes.
var namedCodes = map[string]uint8{
	"none":        KeyNone,
	"enter":       KeyEnter,
	"esc":         KeyEscape,
	"escape":      KeyEscape,
	"backspace":   KeyBackspace,
	"tab":         KeyTab,
	"space":       KeySpace,
	"delete":      KeyDelete,
	"insert":      KeyInsert,
	"home":        KeyHome,
	"end":         KeyEnd,
	"pageup":      KeyPageUp,
	"pagedown":    KeyPageDown,
	"up":          KeyUp,
	"down":        KeyDown,
	"left":        KeyLeft,
	"right":       KeyRight,
	"printscreen": KeyPrintScreen,
	"f1":          KeyF1,
	"f2":          KeyF2,
	"f3":          KeyF3,
	"f4":          KeyF4,
	"f5":          KeyF5,
	"f6":          KeyF6,
	"f7":          KeyF7,
	"f8":          KeyF8,
	"f9":          KeyF9,
	"f10":         KeyF10,
	"f11":         KeyF11,
	"f12":         KeyF12,
}

func init() {
	// Letter and digit keycode names ("a".."z", "0".."9") for shortcut
	// bindings such as ctrl+c.
	for i := uint8(0); i < 26; i++ {
		namedCodes[string(rune('a'+i))] = KeyA + i
	}
	for i := uint8(0); i < 9; i++ {
		namedCodes[string(rune('1'+i))] = Key1 + i
	}
	namedCodes["0"] = Key0
}

// namedMods maps configuration modifier names to modifier bits.
var namedMods = map[string]uint8{
	"ctrl":  ModLeftCtrl,
	"shift": ModLeftShift,
	"alt":   ModLeftAlt,
	"gui":   ModLeftGUI,
	"altgr": ModRightAlt,
}

// CodeByName resolves a configuration keycode name ("enter", "f5", ...).
func CodeByName(name string) (uint8, bool) {
	code, ok := namedCodes[name]
	return code, ok
}

// ModByName resolves a configuration modifier name ("ctrl", "gui", ...).
func ModByName(name string) (uint8, bool) {
	mod, ok := namedMods[name]
	return mod, ok
}

// NameByCode is the reverse of CodeByName, used by layout export.
func NameByCode(code uint8) (string, bool) {
	for name, c := range namedCodes {
		if c != code {
			continue
		}
		// Prefer the canonical alias.
		if name == "escape" {
			continue
		}
		return name, true
	}
	return "", false
}

// ModNames expands a modifier mask into configuration names.
func ModNames(mask uint8) []string {
	var names []string
	for _, name := range []string{"ctrl", "shift", "alt", "gui", "altgr"} {
		if mask&namedMods[name] != 0 {
			names = append(names, name)
		}
	}
	return names
}
