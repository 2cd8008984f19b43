package protocol

import "fmt"

// Config is the full device configuration carried by one 520-byte data
// report.
//
// Report layout (131 bytes of content, zero filled to 520):
//
//	Bytes 0-8:     header, passed through opaque (report id, command echo)
//	Byte  9:       sensor id
//	Byte  10:      hi nibble: axes-independent flag, lo nibble: polling rate code
//	Byte  11:      hi nibble: current DPI profile, lo nibble: enabled profile count
//	Byte  12:      profile enable mask, bit i SET means profile i DISABLED
//	Bytes 13-28:   16 raw DPI magnitudes: 8 (x,y) pairs when independent,
//	               else 8 singles followed by 8 unused bytes
//	Bytes 29-52:   8 profile colors, R,G,B
//	Byte  53:      active effect selector, 0-10
//	Bytes 54-128:  effect parameter blocks in fixed order, with a 12-byte
//	               opaque region between constant-rgb and rave
//	Byte  129:     lift-off distance
//	Byte  130:     opaque trailer
type Config struct {
	// Header is kept verbatim for write-back; the transport layer stamps
	// the write magic into it, not the codec.
	Header   [9]byte
	SensorID uint8

	// AxesIndependent and DPIProfileCount are derived from DPIProfiles.
	// Encode recomputes both from the profile list and never trusts the
	// stored values; Normalize refreshes them in the model.
	AxesIndependent   bool
	PollingRate       PollingRate
	CurrentDPIProfile uint8 // 0-7
	DPIProfileCount   uint8 // 0-8
	DPIProfiles       [8]DPIProfile

	Effect       Effect
	EffectParams EffectParameters

	// Reserved is the opaque 12-byte region inside the effect block area,
	// purpose unknown, preserved for round-trip fidelity.
	Reserved        [12]byte
	LiftOffDistance uint8
	ReservedTail    uint8
}

// countEnabled returns the number of enabled DPI profiles.
func (c *Config) countEnabled() uint8 {
	var n uint8
	for _, p := range c.DPIProfiles {
		if p.Enabled {
			n++
		}
	}
	return n
}

// anyIndependent reports whether any profile configures its axes
// separately.
func (c *Config) anyIndependent() bool {
	for _, p := range c.DPIProfiles {
		if p.Value.Independent {
			return true
		}
	}
	return false
}

// Normalize recomputes the derived fields and reshapes the model so that
// encoding is loss-free: when any profile is per-axis every profile
// becomes per-axis (the 16-byte magnitude region is pair-encoded as a
// whole), and color lists without a wire count are padded to their fixed
// slot counts. Mutating callers run this before encoding.
func (c *Config) Normalize() {
	c.DPIProfileCount = c.countEnabled()
	c.AxesIndependent = c.anyIndependent()
	if c.AxesIndependent {
		for i := range c.DPIProfiles {
			v := &c.DPIProfiles[i].Value
			if !v.Independent {
				*v = DoubleDPI(v.X, v.X)
			}
		}
	}
	for len(c.EffectParams.ConstantRGB.Colors) < MaxConstantRGBColors {
		c.EffectParams.ConstantRGB.Colors = append(c.EffectParams.ConstantRGB.Colors, Color{})
	}
	for len(c.EffectParams.Rave.Colors) < MaxRaveColors {
		c.EffectParams.Rave.Colors = append(c.EffectParams.Rave.Colors, Color{})
	}
}

// UnmarshalBinary decodes a configuration data report. On error the
// receiver is left unmodified.
func (c *Config) UnmarshalBinary(data []byte) error {
	var cfg Config
	r := newReader(data)

	header, err := r.take(len(cfg.Header))
	if err != nil {
		return err
	}
	copy(cfg.Header[:], header)

	if cfg.SensorID, err = r.u8(); err != nil {
		return err
	}

	b, err := r.u8()
	if err != nil {
		return err
	}
	cfg.AxesIndependent = b>>4 != 0
	if cfg.PollingRate, err = pollingRateFromCode(b & 0x0f); err != nil {
		return err
	}

	if b, err = r.u8(); err != nil {
		return err
	}
	cfg.CurrentDPIProfile = b >> 4
	cfg.DPIProfileCount = b & 0x0f

	mask, err := r.u8()
	if err != nil {
		return err
	}
	values, err := r.take(16)
	if err != nil {
		return err
	}
	for i := range cfg.DPIProfiles {
		p := &cfg.DPIProfiles[i]
		p.Enabled = mask&(1<<i) == 0
		if cfg.AxesIndependent {
			p.Value = DoubleDPI(dpiFromRaw(values[2*i]), dpiFromRaw(values[2*i+1]))
		} else {
			p.Value = SingleDPI(dpiFromRaw(values[i]))
		}
	}
	for i := range cfg.DPIProfiles {
		if cfg.DPIProfiles[i].Color, err = r.colorRGB(); err != nil {
			return err
		}
	}

	if b, err = r.u8(); err != nil {
		return err
	}
	if cfg.Effect, err = effectFromCode(b); err != nil {
		return err
	}
	if err = cfg.EffectParams.decode(r); err != nil {
		return err
	}
	reserved, err := r.take(len(cfg.Reserved))
	if err != nil {
		return err
	}
	copy(cfg.Reserved[:], reserved)
	if err = cfg.EffectParams.decodeTail(r); err != nil {
		return err
	}

	if cfg.LiftOffDistance, err = r.u8(); err != nil {
		return err
	}
	if cfg.ReservedTail, err = r.u8(); err != nil {
		return err
	}

	*c = cfg
	return nil
}

// MarshalBinary encodes the configuration into a fresh 520-byte report.
// The derived fields are recomputed from the profile list; oversized color
// lists fail with ErrCapacityExceeded before anything is written.
func (c *Config) MarshalBinary() ([]byte, error) {
	if err := c.EffectParams.checkCapacity(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	indep := c.anyIndependent()
	count := c.countEnabled()

	w := newWriter()
	w.put(c.Header[:]...)
	w.put(c.SensorID)

	var indepNibble uint8
	if indep {
		indepNibble = 1
	}
	w.put(indepNibble<<4 | uint8(c.PollingRate)&0x0f)
	w.put(c.CurrentDPIProfile<<4 | count&0x0f)

	var mask uint8
	for i, p := range c.DPIProfiles {
		if !p.Enabled {
			mask |= 1 << i
		}
	}
	w.put(mask)

	if indep {
		for _, p := range c.DPIProfiles {
			x, y := p.Value.X, p.Value.Y
			if !p.Value.Independent {
				y = x
			}
			w.put(dpiToRaw(x), dpiToRaw(y))
		}
	} else {
		for _, p := range c.DPIProfiles {
			w.put(dpiToRaw(p.Value.X))
		}
		w.put(make([]byte, 8)...)
	}
	for _, p := range c.DPIProfiles {
		w.putColorRGB(p.Color)
	}

	w.put(uint8(c.Effect))
	c.EffectParams.Glorious.encode(w)
	c.EffectParams.SingleColor.encode(w)
	c.EffectParams.Breathing.encode(w)
	c.EffectParams.Tail.encode(w)
	c.EffectParams.SeamlessBreathing.encode(w)
	c.EffectParams.ConstantRGB.encode(w)
	w.put(c.Reserved[:]...)
	c.EffectParams.Rave.encode(w)
	c.EffectParams.Random.encode(w)
	c.EffectParams.Wave.encode(w)
	c.EffectParams.SingleBreathing.encode(w)

	w.put(c.LiftOffDistance)
	w.put(c.ReservedTail)
	return w.bytes(), nil
}
