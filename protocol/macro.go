package protocol

import "fmt"

// MacroState is the key or button transition an event represents.
type MacroState uint8

const (
	MacroDown MacroState = 0
	MacroUp   MacroState = 1
)

func (s MacroState) String() string {
	if s == MacroUp {
		return "up"
	}
	return "down"
}

// MacroEventType selects how an event's code byte is interpreted.
type MacroEventType uint8

const (
	MacroEventMouse    MacroEventType = 0x1
	MacroEventKeyboard MacroEventType = 0x5
	MacroEventModifier MacroEventType = 0x6
)

func (t MacroEventType) String() string {
	switch t {
	case MacroEventMouse:
		return "mouse"
	case MacroEventKeyboard:
		return "keyboard"
	case MacroEventModifier:
		return "modifier"
	}
	return fmt.Sprintf("MacroEventType(%d)", uint8(t))
}

// MaxMacroDuration is the largest representable event duration: the wire
// packs the delay into 12 bits of milliseconds.
const MaxMacroDuration = 0x0fff

// MacroEvent is one step of a stored macro.
//
// Event layout (3 bytes):
//
//	Byte 0, bit 7:    state (0=Down, 1=Up)
//	Byte 0, bits 4-6: type (1=Mouse, 5=Keyboard, 6=Modifier)
//	Byte 0, bits 0-3: duration high nibble
//	Byte 1:           duration low byte (12-bit big-endian ms total)
//	Byte 2:           code: Key, Modifiers bits, or MouseButtons bits per type
type MacroEvent struct {
	State    MacroState
	Type     MacroEventType
	Code     uint8
	Duration uint16 // 0-4095 ms
}

func (e MacroEvent) String() string {
	var code fmt.Stringer
	switch e.Type {
	case MacroEventMouse:
		code = MouseButtons(e.Code)
	case MacroEventKeyboard:
		code = Key(e.Code)
	case MacroEventModifier:
		code = Modifiers(e.Code)
	default:
		return fmt.Sprintf("%s 0x%02x %dms", e.State, e.Code, e.Duration)
	}
	return fmt.Sprintf("%s %s %s %dms", e.State, e.Type, code, e.Duration)
}

// validate checks the code byte against the closed set for the event type.
func (e MacroEvent) validate() error {
	switch e.Type {
	case MacroEventMouse:
		if MouseButtons(e.Code)&^mouseButtonsMask != 0 {
			return fmt.Errorf("%w: macro mouse code 0x%02x", ErrUnknownActionTag, e.Code)
		}
	case MacroEventKeyboard:
		if _, ok := KeyName[Key(e.Code)]; !ok {
			return fmt.Errorf("%w: macro key code 0x%02x", ErrUnknownActionTag, e.Code)
		}
	case MacroEventModifier:
		if Modifiers(e.Code)&^modifiersMask != 0 {
			return fmt.Errorf("%w: macro modifier code 0x%02x", ErrUnknownActionTag, e.Code)
		}
	default:
		return fmt.Errorf("%w: macro event type 0x%02x", ErrUnknownActionTag, uint8(e.Type))
	}
	return nil
}

func decodeMacroEvent(b []byte) (MacroEvent, error) {
	e := MacroEvent{
		State:    MacroState(b[0] >> 7),
		Type:     MacroEventType(b[0] >> 4 & 0x07),
		Duration: uint16(b[0]&0x0f)<<8 | uint16(b[1]),
		Code:     b[2],
	}
	if err := e.validate(); err != nil {
		return MacroEvent{}, err
	}
	return e, nil
}

// MarshalBinary encodes the event's 3-byte wire form, the inverse of the
// read-side layout. The device-side bank write command itself is not part
// of this package; this exists for callers composing bank payloads.
func (e MacroEvent) MarshalBinary() ([]byte, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	if e.Duration > MaxMacroDuration {
		return nil, fmt.Errorf("%w: macro duration %dms, max %d", ErrCapacityExceeded, e.Duration, MaxMacroDuration)
	}
	if e.State > MacroUp {
		return nil, fmt.Errorf("invalid macro state %d", e.State)
	}
	b0 := uint8(e.State)<<7 | uint8(e.Type)<<4 | uint8(e.Duration>>8)&0x0f
	return []byte{b0, uint8(e.Duration), e.Code}, nil
}

// macroBankHeaderLen covers the fixed prefix of a bank record; the bytes
// are opaque to the decoder (captures show 04 30 02 00 00 00 00 00).
const macroBankHeaderLen = 8

// MacroBank is one stored macro slot.
type MacroBank struct {
	Bank   uint8
	Events []MacroEvent
}

// UnmarshalBinary decodes a macro bank record. On error the receiver is
// left unmodified.
func (m *MacroBank) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if _, err := r.take(macroBankHeaderLen); err != nil {
		return err
	}
	bank, err := r.u8()
	if err != nil {
		return err
	}
	// Reserved byte, possibly the high half of the bank number.
	if _, err := r.u8(); err != nil {
		return err
	}
	count, err := r.u8()
	if err != nil {
		return err
	}
	events := make([]MacroEvent, 0, count)
	for i := 0; i < int(count); i++ {
		b, err := r.take(3)
		if err != nil {
			return err
		}
		e, err := decodeMacroEvent(b)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, e)
	}
	m.Bank = bank
	m.Events = events
	return nil
}
