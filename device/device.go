// Package device talks to the mouse over HID feature reports. It owns the
// request/response sequencing and the settle delay; all report contents
// come from and go to the protocol package untouched except for the write
// magic stamped into outgoing data reports.
package device

import (
	"fmt"
	"time"

	"github.com/sstallion/go-hid"

	"gloryctl/internal/log"
	"gloryctl/protocol"
)

// Options selects which device to open. Zero fields fall back to the
// Model O defaults.
type Options struct {
	VendorID  uint16
	ProductID uint16
	Interface int
}

func (o Options) withDefaults() Options {
	if o.VendorID == 0 {
		o.VendorID = VendorID
	}
	if o.ProductID == 0 {
		o.ProductID = ProductID
	}
	if o.Interface == 0 {
		o.Interface = ControlInterface
	}
	return o
}

// Device is an open handle to the mouse's control interface.
type Device struct {
	dev  *hid.Device
	path string
	raw  log.RawLogger
}

// Open finds the first matching control interface and opens it. Callers
// must Close the returned device; the HID library itself stays
// initialized for the life of the process.
func Open(raw log.RawLogger, opts Options) (*Device, error) {
	opts = opts.withDefaults()
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hid init: %w", err)
	}

	var path string
	err := hid.Enumerate(opts.VendorID, opts.ProductID, func(info *hid.DeviceInfo) error {
		if info.InterfaceNbr == opts.Interface && path == "" {
			path = info.Path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hid enumerate: %w", err)
	}
	if path == "" {
		return nil, fmt.Errorf("no device %04x:%04x with interface %d found",
			opts.VendorID, opts.ProductID, opts.Interface)
	}

	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Device{dev: dev, path: path, raw: raw}, nil
}

// Path returns the platform HID path of the open device.
func (d *Device) Path() string {
	return d.path
}

func (d *Device) Close() error {
	return d.dev.Close()
}

// sendMsg issues a 6-byte command message.
func (d *Device) sendMsg(cmd uint8) error {
	msg := [protocol.MsgSize]byte{reportMsg, cmd}
	d.raw.Log(false, msg[:])
	if _, err := d.dev.SendFeatureReport(msg[:]); err != nil {
		return fmt.Errorf("send command 0x%02x: %w", cmd, err)
	}
	return nil
}

// readData requests and reads one 520-byte data report.
func (d *Device) readData(cmd uint8) ([]byte, error) {
	if err := d.sendMsg(cmd); err != nil {
		return nil, err
	}
	buf := make([]byte, protocol.ReportSize)
	buf[0] = reportData
	if _, err := d.dev.GetFeatureReport(buf); err != nil {
		return nil, fmt.Errorf("read data report 0x%02x: %w", cmd, err)
	}
	d.raw.Log(true, buf)
	return buf, nil
}

// sendData writes one data report: command message, then the report with
// the write magic stamped into byte 3, then the settle delay.
func (d *Device) sendData(cmd, magic uint8, data []byte) error {
	if len(data) != protocol.ReportSize {
		return fmt.Errorf("data report is %d bytes, want %d", len(data), protocol.ReportSize)
	}
	if err := d.sendMsg(cmd); err != nil {
		return err
	}
	out := make([]byte, protocol.ReportSize)
	copy(out, data)
	out[3] = magic
	d.raw.Log(false, out)
	if _, err := d.dev.SendFeatureReport(out); err != nil {
		return fmt.Errorf("send data report 0x%02x: %w", cmd, err)
	}
	time.Sleep(settleDelay)
	return nil
}

// FirmwareVersion reads the 4-character firmware version string.
func (d *Device) FirmwareVersion() (string, error) {
	if err := d.sendMsg(cmdFirmwareVersion); err != nil {
		return "", err
	}
	buf := make([]byte, protocol.MsgSize)
	buf[0] = reportMsg
	if _, err := d.dev.GetFeatureReport(buf); err != nil {
		return "", fmt.Errorf("read version: %w", err)
	}
	d.raw.Log(true, buf)
	return protocol.DecodeVersion(buf)
}

// ReadConfigRaw returns the raw configuration report.
func (d *Device) ReadConfigRaw() ([]byte, error) {
	return d.readData(cmdConfig)
}

// ReadConfig reads and decodes the device configuration.
func (d *Device) ReadConfig() (*protocol.Config, error) {
	raw, err := d.ReadConfigRaw()
	if err != nil {
		return nil, err
	}
	var cfg protocol.Config
	if err := cfg.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// WriteConfig encodes and writes the configuration.
func (d *Device) WriteConfig(cfg *protocol.Config) error {
	raw, err := cfg.MarshalBinary()
	if err != nil {
		return err
	}
	return d.sendData(cmdConfig, configWriteMagic, raw)
}

// ReadButtonMappingRaw returns the raw button-map report.
func (d *Device) ReadButtonMappingRaw() ([]byte, error) {
	return d.readData(cmdButtonMap)
}

// ReadButtonMapping reads and decodes the button mapping.
func (d *Device) ReadButtonMapping() (*protocol.ButtonMapping, error) {
	raw, err := d.ReadButtonMappingRaw()
	if err != nil {
		return nil, err
	}
	var m protocol.ButtonMapping
	if err := m.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("decode button map: %w", err)
	}
	return &m, nil
}

// WriteButtonMapping encodes and writes the button mapping.
func (d *Device) WriteButtonMapping(m *protocol.ButtonMapping) error {
	raw, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	return d.sendData(cmdButtonMap, buttonMapWriteMagic, raw)
}
