package cmd

import (
	"fmt"
	"log/slog"

	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// Rgb selects the active lighting effect and updates that effect's
// parameter block. The other blocks stay untouched, so switching effects
// never loses previously configured parameters.
type Rgb struct {
	Effect     string   `arg:"" help:"Effect name" enum:"off,glorious,single-color,breathing,tail,seamless-breathing,constant-rgb,rave,random,wave,single-breathing"`
	Speed      uint8    `help:"Effect speed (0-15)" default:"4"`
	Brightness uint8    `help:"Effect brightness (0-15)" default:"4"`
	Direction  uint8    `help:"Sweep direction for the glorious effect (0=up, 1=down)"`
	Colors     []string `help:"Effect colors as rrggbb hex" sep:","`
}

func (c *Rgb) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	effect, err := protocol.ParseEffect(c.Effect)
	if err != nil {
		return err
	}
	if c.Speed > 15 {
		return fmt.Errorf("speed %d out of range 0-15", c.Speed)
	}
	if c.Brightness > 15 {
		return fmt.Errorf("brightness %d out of range 0-15", c.Brightness)
	}
	colors := make([]protocol.Color, 0, len(c.Colors))
	for i, s := range c.Colors {
		color, err := protocol.ParseColor(s)
		if err != nil {
			return fmt.Errorf("color %d: %w", i, err)
		}
		colors = append(colors, color)
	}

	return updateConfig(raw, cli.Device, func(cfg *protocol.Config) error {
		cfg.Effect = effect
		if err := c.applyParams(cfg, effect, colors); err != nil {
			return err
		}
		logger.Info("set lighting effect", "effect", effect.String())
		return nil
	})
}

// applyParams rewrites the selected effect's block from the flags. Color
// counts are checked here so the error names the effect instead of
// surfacing later as a bare encode failure.
func (c *Rgb) applyParams(cfg *protocol.Config, effect protocol.Effect, colors []protocol.Color) error {
	ep := &cfg.EffectParams
	switch effect {
	case protocol.EffectOff:
		// Nothing to configure.
	case protocol.EffectGlorious:
		if c.Direction > 1 {
			return fmt.Errorf("direction %d out of range 0-1", c.Direction)
		}
		ep.Glorious = protocol.GloriousParams{Speed: c.Speed, Direction: c.Direction}
	case protocol.EffectSingleColor:
		color, err := oneColor(colors, "single-color")
		if err != nil {
			return err
		}
		ep.SingleColor = protocol.SingleColorParams{Brightness: c.Brightness, Color: color}
	case protocol.EffectBreathing:
		if len(colors) == 0 {
			return fmt.Errorf("breathing needs 1-%d colors", protocol.MaxBreathingColors)
		}
		if len(colors) > protocol.MaxBreathingColors {
			return fmt.Errorf("%w: %d breathing colors, max %d", protocol.ErrCapacityExceeded, len(colors), protocol.MaxBreathingColors)
		}
		ep.Breathing = protocol.BreathingParams{Speed: c.Speed, Colors: colors}
	case protocol.EffectTail:
		ep.Tail = protocol.TailParams{Speed: c.Speed, Brightness: c.Brightness}
	case protocol.EffectSeamlessBreathing:
		ep.SeamlessBreathing = protocol.SeamlessBreathingParams{Speed: c.Speed}
	case protocol.EffectConstantRGB:
		if len(colors) == 0 || len(colors) > protocol.MaxConstantRGBColors {
			return fmt.Errorf("constant-rgb needs 1-%d colors", protocol.MaxConstantRGBColors)
		}
		ep.ConstantRGB = protocol.ConstantRGBParams{Colors: colors}
	case protocol.EffectRave:
		if len(colors) == 0 || len(colors) > protocol.MaxRaveColors {
			return fmt.Errorf("rave needs 1-%d colors", protocol.MaxRaveColors)
		}
		ep.Rave = protocol.RaveParams{Speed: c.Speed, Brightness: c.Brightness, Colors: colors}
	case protocol.EffectRandom:
		ep.Random = protocol.RandomParams{Speed: c.Speed}
	case protocol.EffectWave:
		ep.Wave = protocol.WaveParams{Speed: c.Speed, Brightness: c.Brightness}
	case protocol.EffectSingleBreathing:
		color, err := oneColor(colors, "single-breathing")
		if err != nil {
			return err
		}
		ep.SingleBreathing = protocol.SingleBreathingParams{Speed: c.Speed, Color: color}
	}
	return nil
}

func oneColor(colors []protocol.Color, what string) (protocol.Color, error) {
	if len(colors) != 1 {
		return protocol.Color{}, fmt.Errorf("%s needs exactly one color", what)
	}
	return colors[0], nil
}
