package protocol

import "fmt"

// DPI bounds supported by the sensor, in actual dots per inch. The wire
// stores a single magnitude byte per axis; the value scales by steps of
// 100 with an off-by-one: raw 0x00 is 100 DPI, raw 0xff is 25600 DPI.
const (
	MinDPI  = 100
	MaxDPI  = 25600
	DPIStep = 100
)

// dpiFromRaw converts a wire magnitude byte to actual DPI.
func dpiFromRaw(raw uint8) uint16 {
	return (uint16(raw) + 1) * DPIStep
}

// dpiToRaw is the exact inverse of dpiFromRaw for in-range values.
func dpiToRaw(dpi uint16) uint8 {
	return uint8(dpi/DPIStep - 1)
}

// ClampDPI snaps a requested value to the nearest representable DPI.
func ClampDPI(dpi int) uint16 {
	if dpi < MinDPI {
		return MinDPI
	}
	if dpi > MaxDPI {
		return MaxDPI
	}
	return uint16((dpi + DPIStep/2) / DPIStep * DPIStep)
}

// DPIValue is one profile's sensitivity. With Independent unset a single
// value in X applies to both axes; set, X and Y are configured separately.
type DPIValue struct {
	Independent bool
	X, Y        uint16
}

// SingleDPI builds a value shared by both axes.
func SingleDPI(dpi uint16) DPIValue {
	return DPIValue{X: dpi}
}

// DoubleDPI builds a value with independently configured axes.
func DoubleDPI(x, y uint16) DPIValue {
	return DPIValue{Independent: true, X: x, Y: y}
}

func (v DPIValue) String() string {
	if v.Independent {
		return fmt.Sprintf("%d,%d", v.X, v.Y)
	}
	return fmt.Sprintf("%d", v.X)
}

// DPIProfile is one of the eight sensitivity slots. Disabled profiles keep
// their stored value and color; the enable state only affects cycling.
type DPIProfile struct {
	Enabled bool
	Value   DPIValue
	Color   Color
}
