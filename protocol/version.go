package protocol

import "fmt"

// versionTag prefixes the firmware version message.
var versionTag = [2]byte{5, 1}

// DecodeVersion extracts the firmware version from a version message: the
// two tag bytes followed by four ASCII characters.
func DecodeVersion(data []byte) (string, error) {
	r := newReader(data)
	tag, err := r.take(len(versionTag))
	if err != nil {
		return "", err
	}
	if tag[0] != versionTag[0] || tag[1] != versionTag[1] {
		return "", fmt.Errorf("unexpected version message tag % x", tag)
	}
	ver, err := r.take(4)
	if err != nil {
		return "", err
	}
	return string(ver), nil
}
