// Package cmd defines the gloryctl command tree. Each command struct is
// wired up by kong and receives the logger and device options through the
// binding set up in the entry point.
package cmd

import (
	"fmt"

	"gloryctl/device"
	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// CLI is the root command structure parsed by kong.
type CLI struct {
	Config string       `help:"Path to a configuration file" type:"path"`
	Log    LogConfig    `embed:"" prefix:"log."`
	Device DeviceConfig `embed:"" prefix:"device."`

	Dump      Dump          `cmd:"" help:"Show firmware version, configuration and button mapping"`
	Dpi       Dpi           `cmd:"" help:"Manage DPI profiles"`
	Rate      Rate          `cmd:"" help:"Set the polling rate"`
	Lod       Lod           `cmd:"" help:"Set the lift-off distance level"`
	Rgb       Rgb           `cmd:"" help:"Select the lighting effect and its parameters"`
	Buttons   Buttons       `cmd:"" help:"Show or change the button mapping"`
	Macro     Macro         `cmd:"" help:"Inspect macro bank dumps"`
	Profile   ProfileCmd    `cmd:"" help:"Save or apply device profiles"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file utilities"`
}

// LogConfig holds the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" enum:"trace,debug,info,warn,error" env:"GLORYCTL_LOG_LEVEL"`
	File    string `help:"Log file path" env:"GLORYCTL_LOG_FILE"`
	RawFile string `name:"raw-file" help:"File receiving hex dumps of every exchanged report"`
}

// DeviceConfig selects the target device. The defaults match the wired
// Model O; clones speaking the same protocol can be addressed by
// overriding the IDs.
type DeviceConfig struct {
	Vid       uint16 `help:"USB vendor id" default:"0x258a"`
	Pid       uint16 `help:"USB product id" default:"0x0036"`
	Interface int    `help:"HID interface number of the control channel" default:"1"`
}

func (d DeviceConfig) options() device.Options {
	return device.Options{VendorID: d.Vid, ProductID: d.Pid, Interface: d.Interface}
}

// withDevice opens the device, runs fn and closes it again.
func withDevice(raw log.RawLogger, dc DeviceConfig, fn func(*device.Device) error) error {
	dev, err := device.Open(raw, dc.options())
	if err != nil {
		return err
	}
	defer dev.Close()
	return fn(dev)
}

// updateConfig reads the configuration, applies mutate, renormalizes the
// derived fields and writes the result back.
func updateConfig(raw log.RawLogger, dc DeviceConfig, mutate func(*protocol.Config) error) error {
	return withDevice(raw, dc, func(dev *device.Device) error {
		cfg, err := dev.ReadConfig()
		if err != nil {
			return err
		}
		if err := mutate(cfg); err != nil {
			return err
		}
		cfg.Normalize()
		return dev.WriteConfig(cfg)
	})
}

// profileIndex validates a CLI profile number.
func profileIndex(n int) (uint8, error) {
	if n < 0 || n > 7 {
		return 0, fmt.Errorf("profile %d out of range 0-7", n)
	}
	return uint8(n), nil
}
