package cmd

import (
	"fmt"
	"log/slog"

	"gloryctl/device"
	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// Buttons groups the button mapping subcommands.
type Buttons struct {
	Show  ButtonsShow  `cmd:"" help:"Show the current mapping" default:"1"`
	Set   ButtonsSet   `cmd:"" help:"Assign an action to a button slot"`
	Reset ButtonsReset `cmd:"" help:"Restore the factory mapping"`
}

type ButtonsShow struct{}

func (c *ButtonsShow) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return withDevice(raw, cli.Device, func(dev *device.Device) error {
		mapping, err := dev.ReadButtonMapping()
		if err != nil {
			return err
		}
		printMapping(mapping)
		return nil
	})
}

type ButtonsSet struct {
	Slot   int    `arg:"" help:"Button slot (0-5: left, right, middle, back, forward, dpi)"`
	Action string `arg:"" help:"Action in grammar form, e.g. mouse:left, keyboard:ctrl+shift:c, dpi:cycle"`
}

func (c *ButtonsSet) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	if c.Slot < 0 || c.Slot >= protocol.NumButtons {
		return fmt.Errorf("slot %d out of range 0-%d", c.Slot, protocol.NumButtons-1)
	}
	action, err := protocol.ParseAction(c.Action)
	if err != nil {
		return err
	}
	return withDevice(raw, cli.Device, func(dev *device.Device) error {
		mapping, err := dev.ReadButtonMapping()
		if err != nil {
			return err
		}
		mapping[c.Slot] = action
		if err := dev.WriteButtonMapping(mapping); err != nil {
			return err
		}
		logger.Info("assigned button", "slot", c.Slot, "action", action.String())
		return nil
	})
}

type ButtonsReset struct{}

func (c *ButtonsReset) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return withDevice(raw, cli.Device, func(dev *device.Device) error {
		mapping := protocol.DefaultMapping()
		if err := dev.WriteButtonMapping(&mapping); err != nil {
			return err
		}
		logger.Info("restored factory button mapping")
		return nil
	})
}
