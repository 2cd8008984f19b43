package protocol_test

import (
	"testing"

	"gloryctl/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleMappingReport builds the wire image of sampleMapping: 8-byte
// header, 6 semantic slots, 14 Disabled padding slots, zero to 520.
func sampleMappingReport() []byte {
	report := make([]byte, protocol.ReportSize)
	content := []byte{
		// header
		0x04, 0x12, 0x00, 0x00, 0x00, 0x00, 0x06, 0x00,
		// left: mouse:left
		0x11, 0x01, 0x00, 0x00,
		// right: keyboard:ctrl+shift:c
		0x21, 0x03, 0x06, 0x00,
		// middle: media:play-pause
		0x22, 0x00, 0x00, 0x01,
		// back: dpi-lock:1600
		0x42, 0x0f, 0x00, 0x00,
		// forward: macro:2:hold
		0x70, 0x02, 0x04, 0x01,
		// dpi button: dpi:up
		0x41, 0x01, 0x00, 0x00,
	}
	copy(report, content)
	for i := 0; i < 14; i++ {
		copy(report[32+4*i:], []byte{0x50, 0x01, 0x00, 0x00})
	}
	return report
}

func sampleMapping() protocol.ButtonMapping {
	return protocol.ButtonMapping{
		protocol.MouseButtonAction{Buttons: protocol.ButtonLeft},
		protocol.KeyboardShortcutAction{Modifiers: protocol.ModCtrl | protocol.ModShift, Key: protocol.KeyC},
		protocol.MediaButtonAction{Buttons: protocol.MediaPlayPause},
		protocol.DPILockAction{DPI: 1600},
		protocol.MacroAction{Bank: 2, Mode: protocol.MacroRepeatUntilRelease},
		protocol.DPISwitchAction{Mode: protocol.DPIUp},
	}
}

func TestButtonMappingDecode(t *testing.T) {
	var m protocol.ButtonMapping
	require.NoError(t, m.UnmarshalBinary(sampleMappingReport()))
	assert.Equal(t, sampleMapping(), m)
}

func TestButtonMappingEncode(t *testing.T) {
	m := sampleMapping()
	raw, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, sampleMappingReport(), raw)
}

func TestButtonMappingRoundTrip(t *testing.T) {
	type testCase struct {
		name   string
		action protocol.ButtonAction
	}

	cases := []testCase{
		{"mouse chord", protocol.MouseButtonAction{Buttons: protocol.ButtonLeft | protocol.ButtonRight}},
		{"scroll up", protocol.ScrollAction{Amount: 1}},
		{"scroll fast down", protocol.ScrollAction{Amount: -3}},
		{"repeat", protocol.RepeatButtonAction{Which: protocol.ButtonMiddle, Interval: 50, Count: 3}},
		{"dpi cycle", protocol.DPISwitchAction{Mode: protocol.DPICycle}},
		{"dpi down", protocol.DPISwitchAction{Mode: protocol.DPIDown}},
		{"dpi lock", protocol.DPILockAction{DPI: 400}},
		{"media", protocol.MediaButtonAction{Buttons: protocol.MediaVolumeUp | protocol.MediaMute}},
		{"shortcut", protocol.KeyboardShortcutAction{Modifiers: protocol.ModAlt, Key: protocol.KeyF4}},
		{"disabled", protocol.DisabledAction{}},
		{"macro burst", protocol.MacroAction{Bank: 1, Mode: protocol.MacroBurst, Count: 5}},
		{"macro toggle", protocol.MacroAction{Bank: 3, Mode: protocol.MacroRepeatUntilAnotherPress}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := sampleMapping()
			m[4] = tc.action
			raw, err := m.MarshalBinary()
			require.NoError(t, err)

			var back protocol.ButtonMapping
			require.NoError(t, back.UnmarshalBinary(raw))
			assert.Equal(t, m, back)
		})
	}
}

func TestDPISwitchSlotFidelity(t *testing.T) {
	report := sampleMappingReport()

	var m protocol.ButtonMapping
	require.NoError(t, m.UnmarshalBinary(report))
	assert.Equal(t, protocol.DPISwitchAction{Mode: protocol.DPIUp}, m[5])

	raw, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x01, 0x00, 0x00}, raw[28:32])
}

func TestButtonMappingDecodeErrors(t *testing.T) {
	type testCase struct {
		name    string
		slot    []byte
		wantErr error
	}

	cases := []testCase{
		{"unknown tag", []byte{0x99, 0x00, 0x00, 0x00}, protocol.ErrUnknownActionTag},
		{"dpi switch mode 3", []byte{0x41, 0x03, 0x00, 0x00}, protocol.ErrUnknownActionTag},
		{"unknown macro mode", []byte{0x70, 0x01, 0x08, 0x00}, protocol.ErrUnknownActionTag},
		{"undefined media bits", []byte{0x22, 0x80, 0x00, 0x00}, protocol.ErrUnknownMediaBitmask},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := sampleMappingReport()
			copy(report[8:12], tc.slot)

			var m protocol.ButtonMapping
			err := m.UnmarshalBinary(report)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, protocol.ButtonMapping{}, m)
		})
	}
}

func TestButtonMappingTruncated(t *testing.T) {
	var m protocol.ButtonMapping
	err := m.UnmarshalBinary(sampleMappingReport()[:20])
	assert.ErrorIs(t, err, protocol.ErrTruncated)
}

func TestDPILockUsesSharedTransform(t *testing.T) {
	var m protocol.ButtonMapping
	report := sampleMappingReport()
	// Raw byte 0x0f in the dpi-lock slot is (15+1)*100 = 1600 DPI.
	require.NoError(t, m.UnmarshalBinary(report))
	assert.Equal(t, protocol.DPILockAction{DPI: 1600}, m[3])
}

func TestDefaultMapping(t *testing.T) {
	m := protocol.DefaultMapping()
	assert.Equal(t, protocol.MouseButtonAction{Buttons: protocol.ButtonLeft}, m[0])
	assert.Equal(t, protocol.DPISwitchAction{Mode: protocol.DPICycle}, m[5])

	raw, err := m.MarshalBinary()
	require.NoError(t, err)
	var back protocol.ButtonMapping
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.Equal(t, m, back)
}
