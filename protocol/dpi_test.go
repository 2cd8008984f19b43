package protocol_test

import (
	"testing"

	"gloryctl/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The raw and actual representations must invert each other exactly for
// every possible magnitude byte; config and dpi-lock encode depend on it.
func TestDPITransformInverse(t *testing.T) {
	for raw := 0; raw <= 0xff; raw++ {
		actual := protocol.DPILockAction{DPI: uint16(raw+1) * 100}
		slotByte := actionSlot(t, actual)[1]
		assert.Equal(t, uint8(raw), slotByte, "raw %#02x", raw)
	}
}

// actionSlot encodes a single action through a full mapping and cuts its
// 4-byte slot back out.
func actionSlot(t *testing.T, action protocol.ButtonAction) []byte {
	t.Helper()
	m := protocol.ButtonMapping{action}
	raw, err := m.MarshalBinary()
	require.NoError(t, err)
	return raw[8:12]
}

func TestClampDPI(t *testing.T) {
	type testCase struct {
		name string
		in   int
		want uint16
	}

	cases := []testCase{
		{"below minimum", 10, 100},
		{"minimum", 100, 100},
		{"rounds down", 440, 400},
		{"rounds up", 460, 500},
		{"maximum", 25600, 25600},
		{"above maximum", 30000, 25600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, protocol.ClampDPI(tc.in))
		})
	}
}

func TestDPIValueString(t *testing.T) {
	assert.Equal(t, "800", protocol.SingleDPI(800).String())
	assert.Equal(t, "400,800", protocol.DoubleDPI(400, 800).String())
}

func TestPollingRate(t *testing.T) {
	for hz, want := range map[int]protocol.PollingRate{
		125:  protocol.Rate125,
		250:  protocol.Rate250,
		500:  protocol.Rate500,
		1000: protocol.Rate1000,
	} {
		rate, err := protocol.PollingRateFromHz(hz)
		require.NoError(t, err)
		assert.Equal(t, want, rate)
		assert.Equal(t, hz, rate.Hz())
	}

	_, err := protocol.PollingRateFromHz(750)
	assert.ErrorIs(t, err, protocol.ErrUnknownPollingRate)
}

func TestParseColor(t *testing.T) {
	c, err := protocol.ParseColor("ff8000")
	require.NoError(t, err)
	assert.Equal(t, protocol.Color{R: 0xff, G: 0x80}, c)

	c, err = protocol.ParseColor("#00ffee")
	require.NoError(t, err)
	assert.Equal(t, protocol.Color{G: 0xff, B: 0xee}, c)
	assert.Equal(t, "00ffee", c.String())

	for _, bad := range []string{"", "fff", "ff80001", "gg8000"} {
		_, err := protocol.ParseColor(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDecodeVersion(t *testing.T) {
	v, err := protocol.DecodeVersion([]byte{5, 1, 'V', '1', '.', '5'})
	require.NoError(t, err)
	assert.Equal(t, "V1.5", v)

	_, err = protocol.DecodeVersion([]byte{5, 1, 'V'})
	assert.ErrorIs(t, err, protocol.ErrTruncated)

	_, err = protocol.DecodeVersion([]byte{9, 9, 'V', '1', '.', '5'})
	assert.Error(t, err)
}
