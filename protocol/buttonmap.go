package protocol

import "fmt"

// NumButtons is the number of physical buttons with a mapping slot.
const NumButtons = 6

// Wire slot count: the report reserves room beyond the physical buttons
// and the firmware expects every extra slot written as Disabled.
const numWireSlots = 20

// buttonmapHeader prefixes an encoded mapping report.
var buttonmapHeader = [8]byte{0x04, 0x12, 0x00, 0x00, 0x00, 0x00, 0x06, 0x00}

// Button-action slot tags.
const (
	tagMouseButton      = 0x11
	tagScroll           = 0x12
	tagKeyboardShortcut = 0x21
	tagMediaButton      = 0x22
	tagRepeatButton     = 0x31
	tagDPISwitch        = 0x41
	tagDPILock          = 0x42
	tagDisabled         = 0x50
	tagMacro            = 0x70
)

// ButtonAction is one remappable button assignment. The set of
// implementations is closed; each occupies a fixed 4-byte wire slot and
// String renders the action grammar form accepted by ParseAction.
type ButtonAction interface {
	fmt.Stringer
	encodeSlot() [4]byte
}

// MouseButtonAction emits one or more physical button presses.
type MouseButtonAction struct {
	Buttons MouseButtons
}

func (a MouseButtonAction) String() string {
	return "mouse:" + a.Buttons.String()
}

func (a MouseButtonAction) encodeSlot() [4]byte {
	return [4]byte{tagMouseButton, uint8(a.Buttons), 0x00, 0x00}
}

// ScrollAction scrolls by a signed amount per press.
type ScrollAction struct {
	Amount int8
}

func (a ScrollAction) String() string {
	switch a.Amount {
	case 1:
		return "scroll:up"
	case -1:
		return "scroll:down"
	}
	return fmt.Sprintf("scroll:%d", a.Amount)
}

func (a ScrollAction) encodeSlot() [4]byte {
	return [4]byte{tagScroll, uint8(a.Amount), 0x00, 0x00}
}

// RepeatButtonAction fires a button Count times at Interval milliseconds.
type RepeatButtonAction struct {
	Which    MouseButtons
	Interval uint8
	Count    uint8
}

// DefaultRepeatInterval is used when the grammar omits the interval.
const DefaultRepeatInterval = 50

func (a RepeatButtonAction) String() string {
	if a.Interval == DefaultRepeatInterval {
		return fmt.Sprintf("repeat:%s:%d", a.Which, a.Count)
	}
	return fmt.Sprintf("repeat:%s:%d:%d", a.Which, a.Count, a.Interval)
}

func (a RepeatButtonAction) encodeSlot() [4]byte {
	return [4]byte{tagRepeatButton, uint8(a.Which), a.Interval, a.Count}
}

// DPISwitchMode selects how a DPI switch button moves through profiles.
type DPISwitchMode uint8

const (
	DPICycle DPISwitchMode = 0x00
	DPIUp    DPISwitchMode = 0x01
	DPIDown  DPISwitchMode = 0x02
)

func (m DPISwitchMode) String() string {
	switch m {
	case DPICycle:
		return "cycle"
	case DPIUp:
		return "up"
	case DPIDown:
		return "down"
	}
	return fmt.Sprintf("DPISwitchMode(%d)", uint8(m))
}

// DPISwitchAction steps or cycles the active DPI profile.
type DPISwitchAction struct {
	Mode DPISwitchMode
}

func (a DPISwitchAction) String() string {
	return "dpi:" + a.Mode.String()
}

func (a DPISwitchAction) encodeSlot() [4]byte {
	return [4]byte{tagDPISwitch, uint8(a.Mode), 0x00, 0x00}
}

// DPILockAction holds the sensor at a fixed DPI while pressed. The slot
// stores the same raw magnitude byte as the config report, so the value
// goes through the shared DPI transform in both directions.
type DPILockAction struct {
	DPI uint16
}

func (a DPILockAction) String() string {
	return fmt.Sprintf("dpi-lock:%d", a.DPI)
}

func (a DPILockAction) encodeSlot() [4]byte {
	return [4]byte{tagDPILock, dpiToRaw(a.DPI), 0x00, 0x00}
}

// MediaButtonAction emits consumer-control events.
type MediaButtonAction struct {
	Buttons MediaButtons
}

func (a MediaButtonAction) String() string {
	return "media:" + a.Buttons.String()
}

func (a MediaButtonAction) encodeSlot() [4]byte {
	v := uint32(a.Buttons)
	return [4]byte{tagMediaButton, uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// KeyboardShortcutAction emits a modifier chord plus one key.
type KeyboardShortcutAction struct {
	Modifiers Modifiers
	Key       Key
}

func (a KeyboardShortcutAction) String() string {
	if a.Modifiers == 0 {
		return "keyboard:" + a.Key.String()
	}
	return fmt.Sprintf("keyboard:%s:%s", a.Modifiers, a.Key)
}

func (a KeyboardShortcutAction) encodeSlot() [4]byte {
	return [4]byte{tagKeyboardShortcut, uint8(a.Modifiers), uint8(a.Key), 0x00}
}

// DisabledAction leaves the button inert. Its wire slot carries a fixed
// 0x01 in the second byte.
type DisabledAction struct{}

func (DisabledAction) String() string {
	return "disable"
}

func (DisabledAction) encodeSlot() [4]byte {
	return [4]byte{tagDisabled, 0x01, 0x00, 0x00}
}

// MacroMode selects how a bound macro bank replays.
type MacroMode uint8

const (
	// MacroBurst replays the bank Count times per press.
	MacroBurst MacroMode = 0x01
	// MacroRepeatUntilAnotherPress toggles replay on press.
	MacroRepeatUntilAnotherPress MacroMode = 0x02
	// MacroRepeatUntilRelease replays while the button is held.
	MacroRepeatUntilRelease MacroMode = 0x04
)

// MacroAction replays a stored macro bank. Count is only meaningful in
// MacroBurst mode.
type MacroAction struct {
	Bank  uint8
	Mode  MacroMode
	Count uint8
}

func (a MacroAction) String() string {
	switch a.Mode {
	case MacroRepeatUntilAnotherPress:
		return fmt.Sprintf("macro:%d:toggle", a.Bank)
	case MacroRepeatUntilRelease:
		return fmt.Sprintf("macro:%d:hold", a.Bank)
	}
	if a.Count == 1 {
		return fmt.Sprintf("macro:%d", a.Bank)
	}
	return fmt.Sprintf("macro:%d:burst:%d", a.Bank, a.Count)
}

func (a MacroAction) encodeSlot() [4]byte {
	switch a.Mode {
	case MacroRepeatUntilAnotherPress, MacroRepeatUntilRelease:
		return [4]byte{tagMacro, a.Bank, uint8(a.Mode), 0x01}
	}
	return [4]byte{tagMacro, a.Bank, uint8(MacroBurst), a.Count}
}

// decodeSlot dispatches a 4-byte slot on its tag byte.
func decodeSlot(slot []byte) (ButtonAction, error) {
	tag, b1, b2, b3 := slot[0], slot[1], slot[2], slot[3]
	switch tag {
	case tagMouseButton:
		return MouseButtonAction{Buttons: MouseButtons(b1)}, nil
	case tagScroll:
		return ScrollAction{Amount: int8(b1)}, nil
	case tagRepeatButton:
		return RepeatButtonAction{Which: MouseButtons(b1), Interval: b2, Count: b3}, nil
	case tagDPISwitch:
		mode := DPISwitchMode(b1)
		switch mode {
		case DPICycle, DPIUp, DPIDown:
			return DPISwitchAction{Mode: mode}, nil
		}
		return nil, fmt.Errorf("%w: dpi switch mode 0x%02x", ErrUnknownActionTag, b1)
	case tagDPILock:
		return DPILockAction{DPI: dpiFromRaw(b1)}, nil
	case tagMediaButton:
		v := uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
		buttons, err := mediaButtonsFromBits(v)
		if err != nil {
			return nil, err
		}
		return MediaButtonAction{Buttons: buttons}, nil
	case tagKeyboardShortcut:
		return KeyboardShortcutAction{Modifiers: Modifiers(b1), Key: Key(b2)}, nil
	case tagDisabled:
		return DisabledAction{}, nil
	case tagMacro:
		switch MacroMode(b2) {
		case MacroBurst:
			return MacroAction{Bank: b1, Mode: MacroBurst, Count: b3}, nil
		case MacroRepeatUntilAnotherPress:
			return MacroAction{Bank: b1, Mode: MacroRepeatUntilAnotherPress}, nil
		case MacroRepeatUntilRelease:
			return MacroAction{Bank: b1, Mode: MacroRepeatUntilRelease}, nil
		}
		return nil, fmt.Errorf("%w: macro mode 0x%02x", ErrUnknownActionTag, b2)
	}
	return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownActionTag, tag)
}

// ButtonMapping assigns an action to each physical button, in slot order
// left, right, middle, back, forward, DPI button.
type ButtonMapping [NumButtons]ButtonAction

// DefaultMapping returns the factory assignment.
func DefaultMapping() ButtonMapping {
	return ButtonMapping{
		MouseButtonAction{Buttons: ButtonLeft},
		MouseButtonAction{Buttons: ButtonRight},
		MouseButtonAction{Buttons: ButtonMiddle},
		MouseButtonAction{Buttons: ButtonBack},
		MouseButtonAction{Buttons: ButtonForward},
		DPISwitchAction{Mode: DPICycle},
	}
}

// UnmarshalBinary decodes a button-map data report. On error the receiver
// is left unmodified.
func (m *ButtonMapping) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if _, err := r.take(len(buttonmapHeader)); err != nil {
		return err
	}
	var mapping ButtonMapping
	for i := range mapping {
		slot, err := r.take(4)
		if err != nil {
			return err
		}
		action, err := decodeSlot(slot)
		if err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		mapping[i] = action
	}
	*m = mapping
	return nil
}

// MarshalBinary encodes the mapping into a fresh 520-byte report: header,
// six semantic slots, then Disabled padding up to the reserved slot count.
func (m *ButtonMapping) MarshalBinary() ([]byte, error) {
	w := newWriter()
	w.put(buttonmapHeader[:]...)
	for _, action := range m {
		if action == nil {
			action = DisabledAction{}
		}
		slot := action.encodeSlot()
		w.put(slot[:]...)
	}
	for i := NumButtons; i < numWireSlots; i++ {
		slot := DisabledAction{}.encodeSlot()
		w.put(slot[:]...)
	}
	return w.bytes(), nil
}
