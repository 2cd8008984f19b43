package device

import "time"

// Glorious Model O family, Sinowealth-based wired mice. Clones that speak
// the same protocol can be targeted with the ID override flags.
const (
	VendorID  uint16 = 0x258a
	ProductID uint16 = 0x0036

	// ControlInterface is the HID interface carrying the vendor feature
	// reports; interface 0 is the regular mouse input endpoint.
	ControlInterface = 1
)

// Report IDs.
const (
	reportMsg  = 5 // 6-byte command message
	reportData = 4 // 520-byte data report
)

// Command bytes sent in the second byte of a command message.
const (
	cmdFirmwareVersion = 0x01
	cmdConfig          = 0x11
	cmdButtonMap       = 0x12
)

// Write magics stamped into byte 3 of an outgoing data report. The
// firmware ignores the write without the matching magic.
const (
	configWriteMagic    = 0x7b
	buttonMapWriteMagic = 0x50
)

// settleDelay is the pause after writing a data report. The mouse gets
// confused when read again immediately; 10 ms is usually enough, 20 for
// good measure.
const settleDelay = 20 * time.Millisecond
