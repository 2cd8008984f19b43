package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"gloryctl/device"
	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// Dump reads the full device state and prints it.
type Dump struct {
	Raw bool `help:"Hex-dump the raw reports instead of decoding them"`
}

func (c *Dump) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return withDevice(raw, cli.Device, func(dev *device.Device) error {
		version, err := dev.FirmwareVersion()
		if err != nil {
			return err
		}
		logger.Debug("device opened", "path", dev.Path(), "firmware", version)
		fmt.Printf("firmware version: %s\n", version)

		if c.Raw {
			return c.dumpRaw(dev)
		}

		cfg, err := dev.ReadConfig()
		if err != nil {
			return err
		}
		mapping, err := dev.ReadButtonMapping()
		if err != nil {
			return err
		}
		printConfig(cfg)
		printMapping(mapping)
		return nil
	})
}

func (c *Dump) dumpRaw(dev *device.Device) error {
	cfg, err := dev.ReadConfigRaw()
	if err != nil {
		return err
	}
	mapping, err := dev.ReadButtonMappingRaw()
	if err != nil {
		return err
	}
	fmt.Println("config report:")
	hexDump(cfg)
	fmt.Println("button map report:")
	hexDump(mapping)
	return nil
}

func hexDump(data []byte) {
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Printf("%04x  % x\n", off, data[off:end])
	}
}

// isTTY gates the fancier layout; piped output stays one fact per line.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func printConfig(cfg *protocol.Config) {
	fmt.Printf("sensor id: 0x%02x\n", cfg.SensorID)
	fmt.Printf("polling rate: %s\n", cfg.PollingRate)
	fmt.Printf("lift-off distance: level %d\n", cfg.LiftOffDistance)
	fmt.Printf("active dpi profile: %d\n", cfg.CurrentDPIProfile)

	tty := isTTY()
	if tty {
		fmt.Println("dpi profiles:")
		fmt.Println("  #  state     dpi          color")
	}
	for i, p := range cfg.DPIProfiles {
		state := "disabled"
		if p.Enabled {
			state = "enabled"
		}
		if tty {
			marker := " "
			if uint8(i) == cfg.CurrentDPIProfile {
				marker = "*"
			}
			fmt.Printf("  %d%s %-8s  %-11s  #%s\n", i, marker, state, p.Value, p.Color)
		} else {
			fmt.Printf("dpi profile %d: %s %s #%s\n", i, state, p.Value, p.Color)
		}
	}

	fmt.Printf("active effect: %s\n", cfg.Effect)
	if params := cfg.EffectParams.Active(cfg.Effect); params != nil {
		fmt.Printf("effect parameters: %s\n", params)
	}
}

func printMapping(mapping *protocol.ButtonMapping) {
	names := [protocol.NumButtons]string{"left", "right", "middle", "back", "forward", "dpi"}
	fmt.Println("buttons:")
	for i, action := range mapping {
		if action == nil {
			action = protocol.DisabledAction{}
		}
		fmt.Printf("  %-8s %s\n", names[i]+":", action)
	}
}
