// Package profile reads and writes human-editable snapshots of the mouse
// state. A profile file is an overlay: fields left out keep whatever the
// device currently has, so a file can pin down just the polling rate or a
// single DPI slot. Colors are "rrggbb" hex and button assignments use the
// action grammar, both in the forms the CLI prints.
package profile

import (
	"fmt"

	"gloryctl/protocol"
)

// Profile is the file model. Pointer and empty values mean "not set".
type Profile struct {
	PollingRate     int    `json:"pollingRate,omitempty" yaml:"polling-rate,omitempty" toml:"polling-rate,omitempty"`
	ActiveProfile   *uint8 `json:"activeProfile,omitempty" yaml:"active-profile,omitempty" toml:"active-profile,omitempty"`
	LiftOffDistance *uint8 `json:"liftOffDistance,omitempty" yaml:"lift-off-distance,omitempty" toml:"lift-off-distance,omitempty"`

	// Profiles are applied by position; a short list leaves the remaining
	// slots untouched.
	Profiles []DPISlot `json:"profiles,omitempty" yaml:"profiles,omitempty" toml:"profiles,omitempty"`

	Effect  string         `json:"effect,omitempty" yaml:"effect,omitempty" toml:"effect,omitempty"`
	Effects EffectSettings `json:"effects,omitempty" yaml:"effects,omitempty" toml:"effects,omitempty"`

	// Buttons are applied by slot order: left, right, middle, back,
	// forward, DPI button.
	Buttons []string `json:"buttons,omitempty" yaml:"buttons,omitempty" toml:"buttons,omitempty"`
}

// DPISlot is one DPI profile entry. DPI sets both axes; DPIX/DPIY set
// them independently and take precedence when both are present.
type DPISlot struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	DPI     int    `json:"dpi,omitempty" yaml:"dpi,omitempty" toml:"dpi,omitempty"`
	DPIX    int    `json:"dpiX,omitempty" yaml:"dpi-x,omitempty" toml:"dpi-x,omitempty"`
	DPIY    int    `json:"dpiY,omitempty" yaml:"dpi-y,omitempty" toml:"dpi-y,omitempty"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// EffectSettings mirrors the per-effect parameter blocks. Only the tables
// present in the file are applied.
type EffectSettings struct {
	Glorious          *GloriousSettings        `json:"glorious,omitempty" yaml:"glorious,omitempty" toml:"glorious,omitempty"`
	SingleColor       *SingleColorSettings     `json:"singleColor,omitempty" yaml:"single-color,omitempty" toml:"single-color,omitempty"`
	Breathing         *BreathingSettings       `json:"breathing,omitempty" yaml:"breathing,omitempty" toml:"breathing,omitempty"`
	Tail              *SpeedBrightness         `json:"tail,omitempty" yaml:"tail,omitempty" toml:"tail,omitempty"`
	SeamlessBreathing *SpeedSetting            `json:"seamlessBreathing,omitempty" yaml:"seamless-breathing,omitempty" toml:"seamless-breathing,omitempty"`
	ConstantRGB       *ColorListSettings       `json:"constantRgb,omitempty" yaml:"constant-rgb,omitempty" toml:"constant-rgb,omitempty"`
	Rave              *RaveSettings            `json:"rave,omitempty" yaml:"rave,omitempty" toml:"rave,omitempty"`
	Random            *SpeedSetting            `json:"random,omitempty" yaml:"random,omitempty" toml:"random,omitempty"`
	Wave              *SpeedBrightness         `json:"wave,omitempty" yaml:"wave,omitempty" toml:"wave,omitempty"`
	SingleBreathing   *SingleBreathingSettings `json:"singleBreathing,omitempty" yaml:"single-breathing,omitempty" toml:"single-breathing,omitempty"`
}

type GloriousSettings struct {
	Speed     uint8 `json:"speed" yaml:"speed" toml:"speed"`
	Direction uint8 `json:"direction" yaml:"direction" toml:"direction"`
}

type SingleColorSettings struct {
	Brightness uint8  `json:"brightness" yaml:"brightness" toml:"brightness"`
	Color      string `json:"color" yaml:"color" toml:"color"`
}

type BreathingSettings struct {
	Speed  uint8    `json:"speed" yaml:"speed" toml:"speed"`
	Colors []string `json:"colors" yaml:"colors" toml:"colors"`
}

type SpeedBrightness struct {
	Speed      uint8 `json:"speed" yaml:"speed" toml:"speed"`
	Brightness uint8 `json:"brightness" yaml:"brightness" toml:"brightness"`
}

type SpeedSetting struct {
	Speed uint8 `json:"speed" yaml:"speed" toml:"speed"`
}

type ColorListSettings struct {
	Colors []string `json:"colors" yaml:"colors" toml:"colors"`
}

type RaveSettings struct {
	Speed      uint8    `json:"speed" yaml:"speed" toml:"speed"`
	Brightness uint8    `json:"brightness" yaml:"brightness" toml:"brightness"`
	Colors     []string `json:"colors" yaml:"colors" toml:"colors"`
}

type SingleBreathingSettings struct {
	Speed uint8  `json:"speed" yaml:"speed" toml:"speed"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

// FromDevice snapshots a decoded configuration and button mapping into a
// fully populated profile.
func FromDevice(cfg *protocol.Config, mapping *protocol.ButtonMapping) *Profile {
	p := &Profile{
		PollingRate:     cfg.PollingRate.Hz(),
		ActiveProfile:   ptr(cfg.CurrentDPIProfile),
		LiftOffDistance: ptr(cfg.LiftOffDistance),
		Effect:          cfg.Effect.String(),
	}
	for _, dp := range cfg.DPIProfiles {
		slot := DPISlot{
			Enabled: ptr(dp.Enabled),
			Color:   dp.Color.String(),
		}
		if dp.Value.Independent {
			slot.DPIX = int(dp.Value.X)
			slot.DPIY = int(dp.Value.Y)
		} else {
			slot.DPI = int(dp.Value.X)
		}
		p.Profiles = append(p.Profiles, slot)
	}

	ep := &cfg.EffectParams
	p.Effects = EffectSettings{
		Glorious:          &GloriousSettings{Speed: ep.Glorious.Speed, Direction: ep.Glorious.Direction},
		SingleColor:       &SingleColorSettings{Brightness: ep.SingleColor.Brightness, Color: ep.SingleColor.Color.String()},
		Breathing:         &BreathingSettings{Speed: ep.Breathing.Speed, Colors: colorStrings(ep.Breathing.Colors)},
		Tail:              &SpeedBrightness{Speed: ep.Tail.Speed, Brightness: ep.Tail.Brightness},
		SeamlessBreathing: &SpeedSetting{Speed: ep.SeamlessBreathing.Speed},
		ConstantRGB:       &ColorListSettings{Colors: colorStrings(ep.ConstantRGB.Colors)},
		Rave:              &RaveSettings{Speed: ep.Rave.Speed, Brightness: ep.Rave.Brightness, Colors: colorStrings(ep.Rave.Colors)},
		Random:            &SpeedSetting{Speed: ep.Random.Speed},
		Wave:              &SpeedBrightness{Speed: ep.Wave.Speed, Brightness: ep.Wave.Brightness},
		SingleBreathing:   &SingleBreathingSettings{Speed: ep.SingleBreathing.Speed, Color: ep.SingleBreathing.Color.String()},
	}

	if mapping != nil {
		for _, action := range mapping {
			p.Buttons = append(p.Buttons, action.String())
		}
	}
	return p
}

// Apply overlays the profile onto a decoded configuration and mapping and
// renormalizes the derived fields. Only fields present in the file change
// anything.
func (p *Profile) Apply(cfg *protocol.Config, mapping *protocol.ButtonMapping) error {
	if p.PollingRate != 0 {
		rate, err := protocol.PollingRateFromHz(p.PollingRate)
		if err != nil {
			return err
		}
		cfg.PollingRate = rate
	}
	if p.ActiveProfile != nil {
		if *p.ActiveProfile > 7 {
			return fmt.Errorf("active profile %d out of range 0-7", *p.ActiveProfile)
		}
		cfg.CurrentDPIProfile = *p.ActiveProfile
	}
	if p.LiftOffDistance != nil {
		cfg.LiftOffDistance = *p.LiftOffDistance
	}

	if len(p.Profiles) > len(cfg.DPIProfiles) {
		return fmt.Errorf("%d DPI profiles, device has %d slots", len(p.Profiles), len(cfg.DPIProfiles))
	}
	for i, slot := range p.Profiles {
		dst := &cfg.DPIProfiles[i]
		if slot.Enabled != nil {
			dst.Enabled = *slot.Enabled
		}
		switch {
		case slot.DPIX != 0 || slot.DPIY != 0:
			dst.Value = protocol.DoubleDPI(protocol.ClampDPI(slot.DPIX), protocol.ClampDPI(slot.DPIY))
		case slot.DPI != 0:
			dst.Value = protocol.SingleDPI(protocol.ClampDPI(slot.DPI))
		}
		if slot.Color != "" {
			c, err := protocol.ParseColor(slot.Color)
			if err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			dst.Color = c
		}
	}

	if p.Effect != "" {
		effect, err := protocol.ParseEffect(p.Effect)
		if err != nil {
			return err
		}
		cfg.Effect = effect
	}
	if err := p.Effects.apply(&cfg.EffectParams); err != nil {
		return err
	}

	if len(p.Buttons) > 0 {
		if len(p.Buttons) != protocol.NumButtons {
			return fmt.Errorf("%d button assignments, want %d", len(p.Buttons), protocol.NumButtons)
		}
		for i, s := range p.Buttons {
			action, err := protocol.ParseAction(s)
			if err != nil {
				return fmt.Errorf("button %d: %w", i, err)
			}
			mapping[i] = action
		}
	}

	cfg.Normalize()
	return nil
}

func (e *EffectSettings) apply(ep *protocol.EffectParameters) error {
	if e.Glorious != nil {
		ep.Glorious = protocol.GloriousParams{Speed: e.Glorious.Speed, Direction: e.Glorious.Direction}
	}
	if e.SingleColor != nil {
		c, err := protocol.ParseColor(e.SingleColor.Color)
		if err != nil {
			return fmt.Errorf("single-color: %w", err)
		}
		ep.SingleColor = protocol.SingleColorParams{Brightness: e.SingleColor.Brightness, Color: c}
	}
	if e.Breathing != nil {
		colors, err := parseColors(e.Breathing.Colors, "breathing")
		if err != nil {
			return err
		}
		ep.Breathing = protocol.BreathingParams{Speed: e.Breathing.Speed, Colors: colors}
	}
	if e.Tail != nil {
		ep.Tail = protocol.TailParams{Speed: e.Tail.Speed, Brightness: e.Tail.Brightness}
	}
	if e.SeamlessBreathing != nil {
		ep.SeamlessBreathing = protocol.SeamlessBreathingParams{Speed: e.SeamlessBreathing.Speed}
	}
	if e.ConstantRGB != nil {
		colors, err := parseColors(e.ConstantRGB.Colors, "constant-rgb")
		if err != nil {
			return err
		}
		ep.ConstantRGB = protocol.ConstantRGBParams{Colors: colors}
	}
	if e.Rave != nil {
		colors, err := parseColors(e.Rave.Colors, "rave")
		if err != nil {
			return err
		}
		ep.Rave = protocol.RaveParams{Speed: e.Rave.Speed, Brightness: e.Rave.Brightness, Colors: colors}
	}
	if e.Random != nil {
		ep.Random = protocol.RandomParams{Speed: e.Random.Speed}
	}
	if e.Wave != nil {
		ep.Wave = protocol.WaveParams{Speed: e.Wave.Speed, Brightness: e.Wave.Brightness}
	}
	if e.SingleBreathing != nil {
		c, err := protocol.ParseColor(e.SingleBreathing.Color)
		if err != nil {
			return fmt.Errorf("single-breathing: %w", err)
		}
		ep.SingleBreathing = protocol.SingleBreathingParams{Speed: e.SingleBreathing.Speed, Color: c}
	}
	return nil
}

func parseColors(in []string, what string) ([]protocol.Color, error) {
	if len(in) == 0 {
		return nil, nil
	}
	colors := make([]protocol.Color, 0, len(in))
	for i, s := range in {
		c, err := protocol.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("%s color %d: %w", what, i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func colorStrings(colors []protocol.Color) []string {
	if len(colors) == 0 {
		return nil
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.String()
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
