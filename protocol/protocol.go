// Package protocol implements the vendor feature-report protocol spoken by
// Glorious Model O / Model O- mice (Sinowealth SN8F248 family firmware).
//
// The device exchanges two report shapes over the control channel: a short
// 6-byte command message and a 520-byte data report carrying the full
// configuration, the button mapping, or a macro bank. This package is the
// codec between those raw reports and the typed model; it knows nothing
// about HID transport or timing. All layouts were reverse engineered from
// USB captures and are reproduced bit for bit, including the firmware's
// quirks (inverted enable mask, swapped color channels in effect blocks,
// per-effect sentinel control bits).
package protocol

import "fmt"

// ReportSize is the fixed length of every data report, in both directions.
// Real content occupies the front of the buffer; the remainder is zero.
const ReportSize = 520

// MsgSize is the length of the short command message report.
const MsgSize = 6

// reader consumes a report front to back. Every take is bounds checked so
// a short or corrupt buffer surfaces as ErrTruncated instead of a panic,
// and decode never reads past the slice it was handed.
type reader struct {
	data []byte
	off  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) take(n int) ([]byte, error) {
	if len(r.data)-r.off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, r.off, len(r.data)-r.off)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) colorRGB() (Color, error) {
	b, err := r.take(3)
	if err != nil {
		return Color{}, err
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// colorRBG reads a color with channels 2 and 3 swapped, the order the
// firmware uses inside effect-parameter blocks.
func (r *reader) colorRBG() (Color, error) {
	b, err := r.take(3)
	if err != nil {
		return Color{}, err
	}
	return Color{R: b[0], B: b[1], G: b[2]}, nil
}

// writer fills a zeroed report front to back. Content never approaches
// ReportSize (the largest layout is 131 bytes), so the tail stays zero and
// the buffer doubles as the required zero padding.
type writer struct {
	buf []byte
	off int
}

func newWriter() *writer {
	return &writer{buf: make([]byte, ReportSize)}
}

func (w *writer) put(bs ...byte) {
	copy(w.buf[w.off:], bs)
	w.off += len(bs)
}

func (w *writer) putColorRGB(c Color) {
	w.put(c.R, c.G, c.B)
}

func (w *writer) putColorRBG(c Color) {
	w.put(c.R, c.B, c.G)
}

func (w *writer) bytes() []byte {
	return w.buf
}
