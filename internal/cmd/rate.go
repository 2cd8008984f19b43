package cmd

import (
	"log/slog"

	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// Rate sets the polling rate.
type Rate struct {
	Hz int `arg:"" help:"Polling rate in Hz" enum:"125,250,500,1000"`
}

func (c *Rate) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	rate, err := protocol.PollingRateFromHz(c.Hz)
	if err != nil {
		return err
	}
	return updateConfig(raw, cli.Device, func(cfg *protocol.Config) error {
		cfg.PollingRate = rate
		logger.Info("set polling rate", "rate", rate.String())
		return nil
	})
}
