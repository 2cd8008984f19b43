package protocol

import (
	"fmt"
	"strings"
)

// Key is a USB HID keyboard usage code, the unit stored in keyboard
// shortcut slots and keyboard macro events.
type Key uint8

// HID usage codes (Keyboard/Keypad usage page).
const (
	// Letters A-Z
	KeyA Key = 0x04
	KeyB Key = 0x05
	KeyC Key = 0x06
	KeyD Key = 0x07
	KeyE Key = 0x08
	KeyF Key = 0x09
	KeyG Key = 0x0A
	KeyH Key = 0x0B
	KeyI Key = 0x0C
	KeyJ Key = 0x0D
	KeyK Key = 0x0E
	KeyL Key = 0x0F
	KeyM Key = 0x10
	KeyN Key = 0x11
	KeyO Key = 0x12
	KeyP Key = 0x13
	KeyQ Key = 0x14
	KeyR Key = 0x15
	KeyS Key = 0x16
	KeyT Key = 0x17
	KeyU Key = 0x18
	KeyV Key = 0x19
	KeyW Key = 0x1A
	KeyX Key = 0x1B
	KeyY Key = 0x1C
	KeyZ Key = 0x1D

	// Numbers 1-0 (top row)
	Key1 Key = 0x1E
	Key2 Key = 0x1F
	Key3 Key = 0x20
	Key4 Key = 0x21
	Key5 Key = 0x22
	Key6 Key = 0x23
	Key7 Key = 0x24
	Key8 Key = 0x25
	Key9 Key = 0x26
	Key0 Key = 0x27

	// Control and punctuation
	KeyEnter      Key = 0x28
	KeyEscape     Key = 0x29
	KeyBackspace  Key = 0x2A
	KeyTab        Key = 0x2B
	KeySpace      Key = 0x2C
	KeyMinus      Key = 0x2D
	KeyEqual      Key = 0x2E
	KeyLeftBrace  Key = 0x2F
	KeyRightBrace Key = 0x30
	KeyBackslash  Key = 0x31
	KeySemicolon  Key = 0x33
	KeyApostrophe Key = 0x34
	KeyGrave      Key = 0x35
	KeyComma      Key = 0x36
	KeyPeriod     Key = 0x37
	KeySlash      Key = 0x38
	KeyCapsLock   Key = 0x39

	// Function keys
	KeyF1  Key = 0x3A
	KeyF2  Key = 0x3B
	KeyF3  Key = 0x3C
	KeyF4  Key = 0x3D
	KeyF5  Key = 0x3E
	KeyF6  Key = 0x3F
	KeyF7  Key = 0x40
	KeyF8  Key = 0x41
	KeyF9  Key = 0x42
	KeyF10 Key = 0x43
	KeyF11 Key = 0x44
	KeyF12 Key = 0x45

	// Navigation cluster
	KeyPrintScreen Key = 0x46
	KeyScrollLock  Key = 0x47
	KeyPause       Key = 0x48
	KeyInsert      Key = 0x49
	KeyHome        Key = 0x4A
	KeyPageUp      Key = 0x4B
	KeyDelete      Key = 0x4C
	KeyEnd         Key = 0x4D
	KeyPageDown    Key = 0x4E
	KeyRight       Key = 0x4F
	KeyLeft        Key = 0x50
	KeyDown        Key = 0x51
	KeyUp          Key = 0x52

	// Keypad
	KeyNumLock    Key = 0x53
	KeyKpSlash    Key = 0x54
	KeyKpAsterisk Key = 0x55
	KeyKpMinus    Key = 0x56
	KeyKpPlus     Key = 0x57
	KeyKpEnter    Key = 0x58
	KeyKp1        Key = 0x59
	KeyKp2        Key = 0x5A
	KeyKp3        Key = 0x5B
	KeyKp4        Key = 0x5C
	KeyKp5        Key = 0x5D
	KeyKp6        Key = 0x5E
	KeyKp7        Key = 0x5F
	KeyKp8        Key = 0x60
	KeyKp9        Key = 0x61
	KeyKp0        Key = 0x62
	KeyKpDot      Key = 0x63
)

// KeyName maps usage codes to the names used by the action grammar.
var KeyName = map[Key]string{
	// Letters
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l", KeyM: "m", KeyN: "n",
	KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyU: "u",
	KeyV: "v", KeyW: "w", KeyX: "x", KeyY: "y", KeyZ: "z",

	// Numbers
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	// Control and punctuation
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeySpace:      "space",
	KeyMinus:      "minus",
	KeyEqual:      "equal",
	KeyLeftBrace:  "leftbrace",
	KeyRightBrace: "rightbrace",
	KeyBackslash:  "backslash",
	KeySemicolon:  "semicolon",
	KeyApostrophe: "apostrophe",
	KeyGrave:      "grave",
	KeyComma:      "comma",
	KeyPeriod:     "period",
	KeySlash:      "slash",
	KeyCapsLock:   "capslock",

	// Function keys
	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5", KeyF6: "f6",
	KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",

	// Navigation cluster
	KeyPrintScreen: "printscreen",
	KeyScrollLock:  "scrolllock",
	KeyPause:       "pause",
	KeyInsert:      "insert",
	KeyHome:        "home",
	KeyPageUp:      "pageup",
	KeyDelete:      "delete",
	KeyEnd:         "end",
	KeyPageDown:    "pagedown",
	KeyRight:       "right",
	KeyLeft:        "left",
	KeyDown:        "down",
	KeyUp:          "up",

	// Keypad
	KeyNumLock: "numlock", KeyKpSlash: "kpslash", KeyKpAsterisk: "kpasterisk",
	KeyKpMinus: "kpminus", KeyKpPlus: "kpplus", KeyKpEnter: "kpenter",
	KeyKp1: "kp1", KeyKp2: "kp2", KeyKp3: "kp3", KeyKp4: "kp4", KeyKp5: "kp5",
	KeyKp6: "kp6", KeyKp7: "kp7", KeyKp8: "kp8", KeyKp9: "kp9", KeyKp0: "kp0",
	KeyKpDot: "kpdot",
}

var keyByName = func() map[string]Key {
	m := make(map[string]Key, len(KeyName)+2)
	for k, name := range KeyName {
		m[name] = k
	}
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	return m
}()

func (k Key) String() string {
	if name, ok := KeyName[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", uint8(k))
}

// KeyByName resolves a grammar key name, case insensitively.
func KeyByName(name string) (Key, bool) {
	k, ok := keyByName[strings.ToLower(name)]
	return k, ok
}
