package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"gloryctl/device"
	"gloryctl/internal/log"
	"gloryctl/profile"
)

// ProfileCmd groups the profile file subcommands.
type ProfileCmd struct {
	Save  ProfileSave  `cmd:"" help:"Snapshot the device state into a profile file"`
	Apply ProfileApply `cmd:"" help:"Overlay a profile file onto the device"`
}

type ProfileSave struct {
	File string `arg:"" help:"Destination file (.json, .yaml or .toml)" type:"path"`
}

func (c *ProfileSave) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	return withDevice(raw, cli.Device, func(dev *device.Device) error {
		cfg, err := dev.ReadConfig()
		if err != nil {
			return err
		}
		mapping, err := dev.ReadButtonMapping()
		if err != nil {
			return err
		}
		p := profile.FromDevice(cfg, mapping)
		if err := p.Save(c.File); err != nil {
			return err
		}
		logger.Info("saved profile", "file", c.File)
		return nil
	})
}

type ProfileApply struct {
	File  string `arg:"" help:"Profile file (.json, .yaml or .toml)" type:"existingfile"`
	Watch bool   `help:"Keep running and re-apply whenever the file changes"`
}

func (c *ProfileApply) Run(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	if err := c.applyOnce(logger, raw, cli); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.watch(ctx, logger, raw, cli)
}

func (c *ProfileApply) applyOnce(logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	p, err := profile.Load(c.File)
	if err != nil {
		return err
	}
	return withDevice(raw, cli.Device, func(dev *device.Device) error {
		cfg, err := dev.ReadConfig()
		if err != nil {
			return err
		}
		mapping, err := dev.ReadButtonMapping()
		if err != nil {
			return err
		}
		if err := p.Apply(cfg, mapping); err != nil {
			return err
		}
		if err := dev.WriteConfig(cfg); err != nil {
			return err
		}
		if err := dev.WriteButtonMapping(mapping); err != nil {
			return err
		}
		logger.Info("applied profile", "file", c.File)
		return nil
	})
}

// watch re-applies the profile on every write to the file, debounced
// because editors typically fire several events per save. Watching the
// directory instead of the file survives rename-based saves.
func (c *ProfileApply) watch(ctx context.Context, logger *slog.Logger, raw log.RawLogger, cli *CLI) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(c.File)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("watching profile", "file", c.File)

	target, _ := filepath.Abs(c.File)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping profile watch")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if abs != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(200 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		case <-pending:
			pending = nil
			if err := c.applyOnce(logger, raw, cli); err != nil {
				logger.Error("failed to apply profile", "file", c.File, "error", err)
			}
		}
	}
}
