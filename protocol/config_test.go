package protocol_test

import (
	"testing"

	"gloryctl/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleConfigReport builds the canonical on-wire image of sampleConfig.
// Offsets follow the config report layout; the tail through byte 519 is
// zero.
func sampleConfigReport() []byte {
	report := make([]byte, protocol.ReportSize)
	content := []byte{
		// header (opaque)
		0x04, 0x11, 0x00, 0x7b, 0x00, 0x00, 0x00, 0x00, 0x00,
		// sensor id
		0x04,
		// shared axes, 500 Hz
		0x03,
		// current profile 1, 3 profiles enabled
		0x13,
		// enable mask: profiles 3-7 disabled
		0xf8,
		// 8 single DPI magnitudes, 8 unused
		0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x07, 0x07, 0x07,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		// profile colors, R,G,B
		0xff, 0x00, 0x00,
		0x00, 0xff, 0x00,
		0x00, 0x00, 0xff,
		0x10, 0x20, 0x30,
		0xff, 0xff, 0x00,
		0x00, 0xff, 0xff,
		0xff, 0x00, 0xff,
		0xff, 0xff, 0xff,
		// active effect: breathing
		0x03,
		// glorious block: speed 4 with sentinel, direction down
		0x44, 0x01,
		// single-color block: brightness 3, color 112233 as R,B,G
		0x30, 0x11, 0x33, 0x22,
		// breathing block: speed 2 with sentinel, 2 of 7 colors used
		0x42, 0x02,
		0xaa, 0xcc, 0xbb,
		0x01, 0x03, 0x02,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		// tail block: speed 1, brightness 2
		0x21,
		// seamless-breathing block: speed 5 with sentinel
		0x45,
		// constant-rgb block: ignored byte, 6 colors as R,B,G
		0x00,
		0x40, 0x60, 0x50,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		// opaque mid-block
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab,
		// rave block: speed 3, brightness 1, 2 colors
		0x13,
		0x70, 0x90, 0x80,
		0x00, 0x00, 0x00,
		// random block: speed 6
		0x06,
		// wave block: speed 2, brightness 3
		0x32,
		// single-breathing block: speed 4, color 445566 as R,B,G
		0x04, 0x44, 0x66, 0x55,
		// lift-off distance
		0x02,
		// trailer
		0x00,
	}
	copy(report, content)
	return report
}

// sampleConfig is the decoded form of sampleConfigReport.
func sampleConfig() protocol.Config {
	cfg := protocol.Config{
		Header:            [9]byte{0x04, 0x11, 0x00, 0x7b, 0x00, 0x00, 0x00, 0x00, 0x00},
		SensorID:          0x04,
		AxesIndependent:   false,
		PollingRate:       protocol.Rate500,
		CurrentDPIProfile: 1,
		DPIProfileCount:   3,
		Effect:            protocol.EffectBreathing,
		Reserved:          [12]byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab},
		LiftOffDistance:   2,
		ReservedTail:      0,
	}
	values := []uint16{400, 800, 1600, 3200, 6400, 800, 800, 800}
	colors := []protocol.Color{
		{R: 0xff}, {G: 0xff}, {B: 0xff},
		{R: 0x10, G: 0x20, B: 0x30},
		{R: 0xff, G: 0xff}, {G: 0xff, B: 0xff}, {R: 0xff, B: 0xff},
		{R: 0xff, G: 0xff, B: 0xff},
	}
	for i := range cfg.DPIProfiles {
		cfg.DPIProfiles[i] = protocol.DPIProfile{
			Enabled: i < 3,
			Value:   protocol.SingleDPI(values[i]),
			Color:   colors[i],
		}
	}
	cfg.EffectParams = protocol.EffectParameters{
		Glorious:    protocol.GloriousParams{Speed: 4, Direction: 1},
		SingleColor: protocol.SingleColorParams{Brightness: 3, Color: protocol.Color{R: 0x11, G: 0x22, B: 0x33}},
		Breathing: protocol.BreathingParams{Speed: 2, Colors: []protocol.Color{
			{R: 0xaa, G: 0xbb, B: 0xcc},
			{R: 0x01, G: 0x02, B: 0x03},
		}},
		Tail:              protocol.TailParams{Speed: 1, Brightness: 2},
		SeamlessBreathing: protocol.SeamlessBreathingParams{Speed: 5},
		ConstantRGB: protocol.ConstantRGBParams{Colors: []protocol.Color{
			{R: 0x40, G: 0x50, B: 0x60},
			{}, {}, {}, {}, {},
		}},
		Rave: protocol.RaveParams{Speed: 3, Brightness: 1, Colors: []protocol.Color{
			{R: 0x70, G: 0x80, B: 0x90},
			{},
		}},
		Random:          protocol.RandomParams{Speed: 6},
		Wave:            protocol.WaveParams{Speed: 2, Brightness: 3},
		SingleBreathing: protocol.SingleBreathingParams{Speed: 4, Color: protocol.Color{R: 0x44, G: 0x55, B: 0x66}},
	}
	return cfg
}

func TestConfigDecode(t *testing.T) {
	var cfg protocol.Config
	require.NoError(t, cfg.UnmarshalBinary(sampleConfigReport()))
	assert.Equal(t, sampleConfig(), cfg)
}

func TestConfigEncode(t *testing.T) {
	cfg := sampleConfig()
	raw, err := cfg.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, sampleConfigReport(), raw)
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := sampleConfig()
	raw, err := cfg.MarshalBinary()
	require.NoError(t, err)

	var back protocol.Config
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.Equal(t, cfg, back)
}

func TestConfigDecodeIndependentAxes(t *testing.T) {
	report := sampleConfigReport()
	// 1000 Hz with the axes-independent flag set.
	report[10] = 0x14
	// Magnitudes become 8 (x,y) pairs.
	pairs := []byte{
		0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x07, 0x07, 0x07,
		0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07,
	}
	copy(report[13:29], pairs)

	var cfg protocol.Config
	require.NoError(t, cfg.UnmarshalBinary(report))

	assert.True(t, cfg.AxesIndependent)
	assert.Equal(t, protocol.Rate1000, cfg.PollingRate)
	assert.Equal(t, protocol.DoubleDPI(400, 800), cfg.DPIProfiles[0].Value)
	assert.Equal(t, protocol.DoubleDPI(1600, 3200), cfg.DPIProfiles[1].Value)
	assert.Equal(t, protocol.DoubleDPI(6400, 800), cfg.DPIProfiles[2].Value)

	// Byte-exact round trip holds for the pair layout too.
	raw, err := cfg.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, report, raw)
}

func TestConfigDecodeErrors(t *testing.T) {
	type testCase struct {
		name    string
		mutate  func(report []byte) []byte
		wantErr error
	}

	cases := []testCase{
		{
			name:    "empty input",
			mutate:  func(r []byte) []byte { return nil },
			wantErr: protocol.ErrTruncated,
		},
		{
			name:    "cut inside effect blocks",
			mutate:  func(r []byte) []byte { return r[:100] },
			wantErr: protocol.ErrTruncated,
		},
		{
			name: "polling rate code 5",
			mutate: func(r []byte) []byte {
				r[10] = 0x05
				return r
			},
			wantErr: protocol.ErrUnknownPollingRate,
		},
		{
			name: "polling rate code 0",
			mutate: func(r []byte) []byte {
				r[10] = 0x10
				return r
			},
			wantErr: protocol.ErrUnknownPollingRate,
		},
		{
			name: "effect selector 0xff",
			mutate: func(r []byte) []byte {
				r[53] = 0xff
				return r
			},
			wantErr: protocol.ErrUnknownEffect,
		},
		{
			name: "effect selector 11",
			mutate: func(r []byte) []byte {
				r[53] = 0x0b
				return r
			},
			wantErr: protocol.ErrUnknownEffect,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg protocol.Config
			err := cfg.UnmarshalBinary(tc.mutate(sampleConfigReport()))
			assert.ErrorIs(t, err, tc.wantErr)
			// Decode failures leave no partial state behind.
			assert.Equal(t, protocol.Config{}, cfg)
		})
	}
}

func TestConfigEnableMaskSense(t *testing.T) {
	report := sampleConfigReport()
	report[12] = 0b00000101

	var cfg protocol.Config
	require.NoError(t, cfg.UnmarshalBinary(report))

	for i, p := range cfg.DPIProfiles {
		wantEnabled := i != 0 && i != 2
		assert.Equal(t, wantEnabled, p.Enabled, "profile %d", i)
	}
}

func TestConfigColorChannelOrder(t *testing.T) {
	report := sampleConfigReport()
	// Same three bytes, read as a profile color and as an effect color.
	copy(report[29:32], []byte{0x10, 0x20, 0x30})
	copy(report[57:60], []byte{0x10, 0x20, 0x30})

	var cfg protocol.Config
	require.NoError(t, cfg.UnmarshalBinary(report))

	assert.Equal(t, protocol.Color{R: 0x10, G: 0x20, B: 0x30}, cfg.DPIProfiles[0].Color)
	assert.Equal(t, protocol.Color{R: 0x10, G: 0x30, B: 0x20}, cfg.EffectParams.SingleColor.Color)
}

func TestConfigEncodeRecomputesDerivedFields(t *testing.T) {
	cfg := sampleConfig()
	// Stale authored values must not reach the wire.
	cfg.DPIProfileCount = 9
	cfg.AxesIndependent = true
	for i := range cfg.DPIProfiles {
		cfg.DPIProfiles[i].Value.Independent = false
	}

	raw, err := cfg.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, sampleConfigReport(), raw)

	var back protocol.Config
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.False(t, back.AxesIndependent)
	assert.Equal(t, uint8(3), back.DPIProfileCount)
}

func TestConfigEncodeCapacity(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(cfg *protocol.Config)
	}

	cases := []testCase{
		{
			name: "8 breathing colors",
			mutate: func(cfg *protocol.Config) {
				cfg.EffectParams.Breathing.Colors = make([]protocol.Color, 8)
			},
		},
		{
			name: "7 constant-rgb colors",
			mutate: func(cfg *protocol.Config) {
				cfg.EffectParams.ConstantRGB.Colors = make([]protocol.Color, 7)
			},
		},
		{
			name: "3 rave colors",
			mutate: func(cfg *protocol.Config) {
				cfg.EffectParams.Rave.Colors = make([]protocol.Color, 3)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := sampleConfig()
			tc.mutate(&cfg)
			_, err := cfg.MarshalBinary()
			assert.ErrorIs(t, err, protocol.ErrCapacityExceeded)
		})
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := sampleConfig()
	cfg.DPIProfiles[4].Value = protocol.DoubleDPI(1600, 3200)
	cfg.DPIProfiles[5].Enabled = true
	cfg.EffectParams.Rave.Colors = cfg.EffectParams.Rave.Colors[:1]
	cfg.EffectParams.ConstantRGB.Colors = cfg.EffectParams.ConstantRGB.Colors[:2]
	cfg.Normalize()

	assert.True(t, cfg.AxesIndependent)
	assert.Equal(t, uint8(4), cfg.DPIProfileCount)
	for i, p := range cfg.DPIProfiles {
		assert.True(t, p.Value.Independent, "profile %d", i)
	}
	// Single values promote to symmetric pairs.
	assert.Equal(t, protocol.DoubleDPI(400, 400), cfg.DPIProfiles[0].Value)
	// Lists without a wire count pad to their slot counts.
	assert.Len(t, cfg.EffectParams.Rave.Colors, protocol.MaxRaveColors)
	assert.Len(t, cfg.EffectParams.ConstantRGB.Colors, protocol.MaxConstantRGBColors)

	raw, err := cfg.MarshalBinary()
	require.NoError(t, err)
	var back protocol.Config
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.Equal(t, cfg, back)
}

func TestBreathingCountBoundsColors(t *testing.T) {
	report := sampleConfigReport()
	// Count byte says one color; the remaining slots hold stale data.
	report[61] = 0x01

	var cfg protocol.Config
	require.NoError(t, cfg.UnmarshalBinary(report))
	assert.Equal(t, []protocol.Color{{R: 0xaa, G: 0xbb, B: 0xcc}}, cfg.EffectParams.Breathing.Colors)
}
