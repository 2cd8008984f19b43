package protocol_test

import (
	"testing"

	"gloryctl/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want protocol.ButtonAction
	}

	cases := []testCase{
		{"disable", "disable", protocol.DisabledAction{}},
		{"mouse left", "mouse:left", protocol.MouseButtonAction{Buttons: protocol.ButtonLeft}},
		{"mouse chord", "mouse:left+right", protocol.MouseButtonAction{Buttons: protocol.ButtonLeft | protocol.ButtonRight}},
		{"scroll up", "scroll:up", protocol.ScrollAction{Amount: 1}},
		{"scroll down", "scroll:down", protocol.ScrollAction{Amount: -1}},
		{"scroll signed", "scroll:-2", protocol.ScrollAction{Amount: -2}},
		{"repeat default interval", "repeat:left:3", protocol.RepeatButtonAction{Which: protocol.ButtonLeft, Interval: 50, Count: 3}},
		{"repeat explicit interval", "repeat:middle:2:100", protocol.RepeatButtonAction{Which: protocol.ButtonMiddle, Interval: 100, Count: 2}},
		{"dpi cycle", "dpi:cycle", protocol.DPISwitchAction{Mode: protocol.DPICycle}},
		{"dpi up", "dpi:up", protocol.DPISwitchAction{Mode: protocol.DPIUp}},
		{"dpi lock", "dpi-lock:1600", protocol.DPILockAction{DPI: 1600}},
		{"dpi lock clamps", "dpi-lock:99999", protocol.DPILockAction{DPI: 25600}},
		{"media", "media:play-pause", protocol.MediaButtonAction{Buttons: protocol.MediaPlayPause}},
		{"macro", "macro:1", protocol.MacroAction{Bank: 1, Mode: protocol.MacroBurst, Count: 1}},
		{"macro burst count", "macro:1:burst:4", protocol.MacroAction{Bank: 1, Mode: protocol.MacroBurst, Count: 4}},
		{"macro toggle", "macro:2:toggle", protocol.MacroAction{Bank: 2, Mode: protocol.MacroRepeatUntilAnotherPress}},
		{"macro hold", "macro:2:hold", protocol.MacroAction{Bank: 2, Mode: protocol.MacroRepeatUntilRelease}},
		{"keyboard plain key", "keyboard:f5", protocol.KeyboardShortcutAction{Key: protocol.KeyF5}},
		{"keyboard with modifiers", "keyboard:ctrl+shift:c", protocol.KeyboardShortcutAction{Modifiers: protocol.ModCtrl | protocol.ModShift, Key: protocol.KeyC}},
		{"keyboard win alias", "keyboard:win:l", protocol.KeyboardShortcutAction{Modifiers: protocol.ModSuper, Key: protocol.KeyL}},
		{"case insensitive", "MOUSE:LEFT", protocol.MouseButtonAction{Buttons: protocol.ButtonLeft}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := protocol.ParseAction(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	cases := []string{
		"",
		"mouse",
		"mouse:pinky",
		"scroll:fast",
		"repeat:left",
		"repeat:left:1:2:3",
		"dpi:sideways",
		"dpi-lock:many",
		"media:rewind-tape",
		"macro:one",
		"macro:1:forever",
		"keyboard:hyper:c",
		"keyboard:ctrl:noSuchKey",
		"launch:rocket",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := protocol.ParseAction(in)
			assert.Error(t, err)
		})
	}
}

// Every action's String form parses back to an equal action.
func TestActionStringRoundTrip(t *testing.T) {
	actions := []protocol.ButtonAction{
		protocol.DisabledAction{},
		protocol.MouseButtonAction{Buttons: protocol.ButtonForward},
		protocol.ScrollAction{Amount: 1},
		protocol.ScrollAction{Amount: 5},
		protocol.RepeatButtonAction{Which: protocol.ButtonLeft, Interval: 50, Count: 2},
		protocol.RepeatButtonAction{Which: protocol.ButtonRight, Interval: 75, Count: 9},
		protocol.DPISwitchAction{Mode: protocol.DPIDown},
		protocol.DPILockAction{DPI: 800},
		protocol.MediaButtonAction{Buttons: protocol.MediaCalculator},
		protocol.KeyboardShortcutAction{Modifiers: protocol.ModCtrl | protocol.ModAlt, Key: protocol.KeyDelete},
		protocol.KeyboardShortcutAction{Key: protocol.KeySpace},
		protocol.MacroAction{Bank: 1, Mode: protocol.MacroBurst, Count: 1},
		protocol.MacroAction{Bank: 1, Mode: protocol.MacroBurst, Count: 3},
		protocol.MacroAction{Bank: 4, Mode: protocol.MacroRepeatUntilRelease},
	}
	for _, action := range actions {
		t.Run(action.String(), func(t *testing.T) {
			back, err := protocol.ParseAction(action.String())
			require.NoError(t, err)
			assert.Equal(t, action, back)
		})
	}
}
