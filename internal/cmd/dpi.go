package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gloryctl/device"
	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// Dpi groups the DPI profile subcommands.
type Dpi struct {
	List    DpiList    `cmd:"" help:"List the DPI profiles" default:"1"`
	Use     DpiUse     `cmd:"" help:"Switch to a profile"`
	Enable  DpiEnable  `cmd:"" help:"Enable a profile"`
	Disable DpiDisable `cmd:"" help:"Disable a profile"`
	Set     DpiSet     `cmd:"" help:"Set a profile's DPI value"`
	Color   DpiColor   `cmd:"" help:"Set a profile's indicator color"`
}

type DpiList struct{}

func (c *DpiList) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return withDevice(raw, cli.Device, func(dev *device.Device) error {
		cfg, err := dev.ReadConfig()
		if err != nil {
			return err
		}
		for i, p := range cfg.DPIProfiles {
			state := "disabled"
			if p.Enabled {
				state = "enabled"
			}
			marker := " "
			if uint8(i) == cfg.CurrentDPIProfile {
				marker = "*"
			}
			fmt.Printf("%d%s %-8s %-11s #%s\n", i, marker, state, p.Value, p.Color)
		}
		return nil
	})
}

type DpiUse struct {
	Profile int `arg:"" help:"Profile number (0-7)"`
}

func (c *DpiUse) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	n, err := profileIndex(c.Profile)
	if err != nil {
		return err
	}
	return updateConfig(raw, cli.Device, func(cfg *protocol.Config) error {
		if !cfg.DPIProfiles[n].Enabled {
			return fmt.Errorf("profile %d is disabled", n)
		}
		cfg.CurrentDPIProfile = n
		logger.Info("switched dpi profile", "profile", n, "dpi", cfg.DPIProfiles[n].Value.String())
		return nil
	})
}

type DpiEnable struct {
	Profile int `arg:"" help:"Profile number (0-7)"`
}

func (c *DpiEnable) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return setEnabled(logger, raw, cli, c.Profile, true)
}

type DpiDisable struct {
	Profile int `arg:"" help:"Profile number (0-7)"`
}

func (c *DpiDisable) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return setEnabled(logger, raw, cli, c.Profile, false)
}

func setEnabled(logger *slog.Logger, raw log.RawLogger, cli *CLI, profile int, enabled bool) error {
	n, err := profileIndex(profile)
	if err != nil {
		return err
	}
	return updateConfig(raw, cli.Device, func(cfg *protocol.Config) error {
		if !enabled && cfg.CurrentDPIProfile == n {
			return fmt.Errorf("profile %d is active; switch away before disabling it", n)
		}
		cfg.DPIProfiles[n].Enabled = enabled
		logger.Info("changed dpi profile state", "profile", n, "enabled", enabled)
		return nil
	})
}

type DpiSet struct {
	Profile int    `arg:"" help:"Profile number (0-7)"`
	Dpi     string `arg:"" help:"DPI value, either <dpi> or <xdpi>,<ydpi>"`
}

func (c *DpiSet) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	n, err := profileIndex(c.Profile)
	if err != nil {
		return err
	}
	value, err := parseDPIValue(c.Dpi)
	if err != nil {
		return err
	}
	return updateConfig(raw, cli.Device, func(cfg *protocol.Config) error {
		cfg.DPIProfiles[n].Value = value
		logger.Info("set dpi", "profile", n, "dpi", value.String())
		return nil
	})
}

func parseDPIValue(s string) (protocol.DPIValue, error) {
	xs, ys, independent := strings.Cut(s, ",")
	x, err := strconv.Atoi(xs)
	if err != nil {
		return protocol.DPIValue{}, fmt.Errorf("invalid dpi %q", s)
	}
	if !independent {
		return protocol.SingleDPI(protocol.ClampDPI(x)), nil
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return protocol.DPIValue{}, fmt.Errorf("invalid dpi %q", s)
	}
	return protocol.DoubleDPI(protocol.ClampDPI(x), protocol.ClampDPI(y)), nil
}

type DpiColor struct {
	Profile int    `arg:"" help:"Profile number (0-7)"`
	Color   string `arg:"" help:"Color as rrggbb hex"`
}

func (c *DpiColor) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	n, err := profileIndex(c.Profile)
	if err != nil {
		return err
	}
	color, err := protocol.ParseColor(c.Color)
	if err != nil {
		return err
	}
	return updateConfig(raw, cli.Device, func(cfg *protocol.Config) error {
		cfg.DPIProfiles[n].Color = color
		logger.Info("set dpi profile color", "profile", n, "color", color.String())
		return nil
	})
}
