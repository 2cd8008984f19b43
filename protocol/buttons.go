package protocol

import (
	"fmt"
	"strings"
)

// bitName pairs one mask bit with its grammar name.
type bitName struct {
	bit  uint32
	name string
}

// formatBits renders a bitmask as '+'-joined names, keeping any residue
// without a defined name as hex so a decoded mask always survives a
// show/set round trip. Zero renders as "none".
func formatBits(v uint32, names []bitName) string {
	var parts []string
	for _, e := range names {
		if v&e.bit != 0 {
			parts = append(parts, e.name)
			v &^= e.bit
		}
	}
	if v != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", v))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// parseBits parses '+'-joined names into a bitmask.
func parseBits(s string, names []bitName, kind string) (uint32, error) {
	var v uint32
	for _, part := range strings.Split(s, "+") {
		found := false
		for _, e := range names {
			if e.name == part {
				v |= e.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown %s %q", kind, part)
		}
	}
	return v, nil
}

// MouseButtons is the physical-button bitmask used by button actions and
// macro events.
type MouseButtons uint8

const (
	ButtonLeft    MouseButtons = 0x01
	ButtonRight   MouseButtons = 0x02
	ButtonMiddle  MouseButtons = 0x04
	ButtonBack    MouseButtons = 0x08
	ButtonForward MouseButtons = 0x10
)

const mouseButtonsMask = ButtonLeft | ButtonRight | ButtonMiddle | ButtonBack | ButtonForward

var mouseButtonNames = []bitName{
	{uint32(ButtonLeft), "left"},
	{uint32(ButtonRight), "right"},
	{uint32(ButtonMiddle), "middle"},
	{uint32(ButtonBack), "back"},
	{uint32(ButtonForward), "forward"},
}

func (m MouseButtons) String() string {
	return formatBits(uint32(m), mouseButtonNames)
}

// ParseMouseButtons parses '+'-joined button names.
func ParseMouseButtons(s string) (MouseButtons, error) {
	v, err := parseBits(s, mouseButtonNames, "mouse button")
	return MouseButtons(v), err
}

// Modifiers is the keyboard modifier bitmask, HID boot-report layout. The
// low nibble is the left-hand set the firmware uses in stored mappings.
type Modifiers uint8

const (
	ModCtrl       Modifiers = 0x01
	ModShift      Modifiers = 0x02
	ModAlt        Modifiers = 0x04
	ModSuper      Modifiers = 0x08
	ModRightCtrl  Modifiers = 0x10
	ModRightShift Modifiers = 0x20
	ModRightAlt   Modifiers = 0x40
	ModRightSuper Modifiers = 0x80
)

const modifiersMask = ModCtrl | ModShift | ModAlt | ModSuper |
	ModRightCtrl | ModRightShift | ModRightAlt | ModRightSuper

// The "win" entry is a parse alias; formatting always picks "super" first.
var modifierNames = []bitName{
	{uint32(ModCtrl), "ctrl"},
	{uint32(ModShift), "shift"},
	{uint32(ModAlt), "alt"},
	{uint32(ModSuper), "super"},
	{uint32(ModSuper), "win"},
	{uint32(ModRightCtrl), "rctrl"},
	{uint32(ModRightShift), "rshift"},
	{uint32(ModRightAlt), "ralt"},
	{uint32(ModRightSuper), "rsuper"},
}

func (m Modifiers) String() string {
	return formatBits(uint32(m), modifierNames)
}

// ParseModifiers parses '+'-joined modifier names.
func ParseModifiers(s string) (Modifiers, error) {
	v, err := parseBits(s, modifierNames, "modifier")
	return Modifiers(v), err
}

// MediaButtons is the 24-bit consumer-control bitmask carried by media
// button actions. Unlike the other masks, undefined bits are rejected on
// decode; the firmware only stores combinations of the named bits.
type MediaButtons uint32

const (
	MediaPlayPause  MediaButtons = 0x000001
	MediaNext       MediaButtons = 0x000002
	MediaPrevious   MediaButtons = 0x000004
	MediaStop       MediaButtons = 0x000008
	MediaMute       MediaButtons = 0x000010
	MediaVolumeUp   MediaButtons = 0x000020
	MediaVolumeDown MediaButtons = 0x000040
	MediaPlayer     MediaButtons = 0x000080
	MediaEmail      MediaButtons = 0x000100
	MediaCalculator MediaButtons = 0x000200
	MediaExplorer   MediaButtons = 0x000400
	MediaHome       MediaButtons = 0x000800
)

const mediaButtonsMask = MediaPlayPause | MediaNext | MediaPrevious | MediaStop |
	MediaMute | MediaVolumeUp | MediaVolumeDown | MediaPlayer |
	MediaEmail | MediaCalculator | MediaExplorer | MediaHome

var mediaButtonNames = []bitName{
	{uint32(MediaPlayPause), "play-pause"},
	{uint32(MediaNext), "next-track"},
	{uint32(MediaPrevious), "prev-track"},
	{uint32(MediaStop), "stop"},
	{uint32(MediaMute), "mute"},
	{uint32(MediaVolumeUp), "volume-up"},
	{uint32(MediaVolumeDown), "volume-down"},
	{uint32(MediaPlayer), "media-player"},
	{uint32(MediaEmail), "email"},
	{uint32(MediaCalculator), "calculator"},
	{uint32(MediaExplorer), "explorer"},
	{uint32(MediaHome), "home"},
}

func (m MediaButtons) String() string {
	return formatBits(uint32(m), mediaButtonNames)
}

// ParseMediaButtons parses '+'-joined media button names.
func ParseMediaButtons(s string) (MediaButtons, error) {
	v, err := parseBits(s, mediaButtonNames, "media button")
	return MediaButtons(v), err
}

// mediaButtonsFromBits validates a decoded mask against the defined bits.
func mediaButtonsFromBits(v uint32) (MediaButtons, error) {
	if v&^uint32(mediaButtonsMask) != 0 {
		return 0, fmt.Errorf("%w: 0x%06x", ErrUnknownMediaBitmask, v)
	}
	return MediaButtons(v), nil
}
