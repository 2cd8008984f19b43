package protocol_test

import (
	"testing"

	"gloryctl/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleBankDump is a captured-style bank record: header, bank 3, reserved,
// 4 events.
func sampleBankDump() []byte {
	return []byte{
		0x04, 0x30, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x03, // bank
		0x00, // reserved
		0x04, // event count
		// keyboard 'a' down, 50 ms
		0x50, 0x32, 0x04,
		// keyboard 'a' up, 50 ms
		0xd0, 0x32, 0x04,
		// modifier ctrl down, 1000 ms (0x3e8)
		0x63, 0xe8, 0x01,
		// mouse left up, 4095 ms
		0x9f, 0xff, 0x01,
	}
}

func sampleBank() protocol.MacroBank {
	return protocol.MacroBank{
		Bank: 3,
		Events: []protocol.MacroEvent{
			{State: protocol.MacroDown, Type: protocol.MacroEventKeyboard, Code: 0x04, Duration: 50},
			{State: protocol.MacroUp, Type: protocol.MacroEventKeyboard, Code: 0x04, Duration: 50},
			{State: protocol.MacroDown, Type: protocol.MacroEventModifier, Code: 0x01, Duration: 1000},
			{State: protocol.MacroUp, Type: protocol.MacroEventMouse, Code: 0x01, Duration: 4095},
		},
	}
}

func TestMacroBankDecode(t *testing.T) {
	var bank protocol.MacroBank
	require.NoError(t, bank.UnmarshalBinary(sampleBankDump()))
	assert.Equal(t, sampleBank(), bank)
}

func TestMacroBankDecodeErrors(t *testing.T) {
	type testCase struct {
		name    string
		mutate  func(dump []byte) []byte
		wantErr error
	}

	cases := []testCase{
		{
			name:    "short header",
			mutate:  func(d []byte) []byte { return d[:5] },
			wantErr: protocol.ErrTruncated,
		},
		{
			name:    "count exceeds data",
			mutate:  func(d []byte) []byte { d[10] = 0x20; return d },
			wantErr: protocol.ErrTruncated,
		},
		{
			name:    "event type 2",
			mutate:  func(d []byte) []byte { d[11] = 0x20; return d },
			wantErr: protocol.ErrUnknownActionTag,
		},
		{
			name:    "keyboard code with no key",
			mutate:  func(d []byte) []byte { d[13] = 0xf0; return d },
			wantErr: protocol.ErrUnknownActionTag,
		},
		{
			name:    "mouse code with undefined bit",
			mutate:  func(d []byte) []byte { d[22] = 0x40; return d },
			wantErr: protocol.ErrUnknownActionTag,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var bank protocol.MacroBank
			err := bank.UnmarshalBinary(tc.mutate(sampleBankDump()))
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, protocol.MacroBank{}, bank)
		})
	}
}

func TestMacroEventEncode(t *testing.T) {
	dump := sampleBankDump()
	for i, ev := range sampleBank().Events {
		raw, err := ev.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, dump[11+3*i:14+3*i], raw, "event %d", i)
	}
}

func TestMacroEventEncodeErrors(t *testing.T) {
	_, err := protocol.MacroEvent{
		State: protocol.MacroDown, Type: protocol.MacroEventKeyboard,
		Code: 0x04, Duration: 5000,
	}.MarshalBinary()
	assert.ErrorIs(t, err, protocol.ErrCapacityExceeded)

	_, err = protocol.MacroEvent{
		State: protocol.MacroDown, Type: protocol.MacroEventType(3),
		Code: 0x04, Duration: 10,
	}.MarshalBinary()
	assert.ErrorIs(t, err, protocol.ErrUnknownActionTag)
}

func TestMacroEventDuration12Bit(t *testing.T) {
	// Byte 0's low nibble carries the duration's high 4 bits.
	var bank protocol.MacroBank
	require.NoError(t, bank.UnmarshalBinary(sampleBankDump()))
	assert.Equal(t, uint16(1000), bank.Events[2].Duration)
}
