package cmd

import (
	"log/slog"

	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// Lod sets the lift-off distance. The firmware exposes two levels; the
// byte is written as-is, no height in millimeters is implied.
type Lod struct {
	Level uint8 `arg:"" help:"Lift-off distance level" enum:"1,2"`
}

func (c *Lod) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return updateConfig(raw, cli.Device, func(cfg *protocol.Config) error {
		cfg.LiftOffDistance = c.Level
		logger.Info("set lift-off distance", "level", c.Level)
		return nil
	})
}
