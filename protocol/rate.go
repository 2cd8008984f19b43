package protocol

import "fmt"

// PollingRate is the USB report rate. The wire encodes it as a small
// integer in the low nibble of the rate byte; zero and anything above 4
// are invalid.
type PollingRate uint8

const (
	Rate125 PollingRate = iota + 1
	Rate250
	Rate500
	Rate1000
)

var rateHz = map[PollingRate]int{
	Rate125:  125,
	Rate250:  250,
	Rate500:  500,
	Rate1000: 1000,
}

// Hz returns the rate in hertz, or 0 for an invalid value.
func (p PollingRate) Hz() int {
	return rateHz[p]
}

func (p PollingRate) String() string {
	if hz := p.Hz(); hz != 0 {
		return fmt.Sprintf("%d Hz", hz)
	}
	return fmt.Sprintf("PollingRate(%d)", uint8(p))
}

// PollingRateFromHz maps 125/250/500/1000 to the wire enum.
func PollingRateFromHz(hz int) (PollingRate, error) {
	for p, v := range rateHz {
		if v == hz {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %d Hz", ErrUnknownPollingRate, hz)
}

func pollingRateFromCode(code uint8) (PollingRate, error) {
	p := PollingRate(code)
	if _, ok := rateHz[p]; !ok {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownPollingRate, code)
	}
	return p, nil
}
