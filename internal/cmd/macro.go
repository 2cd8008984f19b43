package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"gloryctl/protocol"
)

// Macro groups the macro bank subcommands. Banks are decoded from dump
// files; the device-side write command for banks is not implemented.
type Macro struct {
	Show MacroShow `cmd:"" help:"Decode a macro bank dump file"`
}

type MacroShow struct {
	File string `arg:"" help:"Path to a raw bank dump" type:"existingfile"`
	Bank int    `help:"Expected bank number; fails if the dump holds another bank" default:"-1"`
}

func (c *MacroShow) Run(logger *slog.Logger) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	var bank protocol.MacroBank
	if err := bank.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("decode %s: %w", c.File, err)
	}
	if c.Bank >= 0 && int(bank.Bank) != c.Bank {
		return fmt.Errorf("dump holds bank %d, expected %d", bank.Bank, c.Bank)
	}
	logger.Debug("decoded macro bank", "file", c.File, "events", len(bank.Events))
	fmt.Printf("bank %d, %d events\n", bank.Bank, len(bank.Events))
	for i, ev := range bank.Events {
		fmt.Printf("%3d: %s\n", i, ev)
	}
	return nil
}
