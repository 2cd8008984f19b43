package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAction parses the textual action grammar into a ButtonAction.
// Every action's String method produces a form ParseAction accepts.
//
// Grammar:
//
//	disable
//	mouse:<left|right|middle|back|forward>        ('+'-joined for chords)
//	scroll:<up|down|signed-int>
//	repeat:<button>:<count>[:<interval>]          (interval default 50 ms)
//	dpi:<cycle|up|down>
//	dpi-lock:<value>
//	media:<name>
//	macro:<bank>[:burst[:<count>]|:toggle|:hold]
//	keyboard:[<mod1+mod2...>:]<key>
func ParseAction(s string) (ButtonAction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "disable" || s == "disabled" {
		return DisabledAction{}, nil
	}
	head, rest, ok := strings.Cut(s, ":")
	if !ok || rest == "" {
		return nil, fmt.Errorf("invalid action %q", s)
	}

	switch head {
	case "mouse":
		buttons, err := ParseMouseButtons(rest)
		if err != nil {
			return nil, err
		}
		return MouseButtonAction{Buttons: buttons}, nil

	case "scroll":
		switch rest {
		case "up":
			return ScrollAction{Amount: 1}, nil
		case "down":
			return ScrollAction{Amount: -1}, nil
		}
		n, err := strconv.ParseInt(rest, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid scroll amount %q", rest)
		}
		return ScrollAction{Amount: int8(n)}, nil

	case "repeat":
		parts := strings.Split(rest, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid repeat action %q: want repeat:<button>:<count>[:<interval>]", s)
		}
		which, err := ParseMouseButtons(parts[0])
		if err != nil {
			return nil, err
		}
		count, err := parseByte(parts[1], "repeat count")
		if err != nil {
			return nil, err
		}
		interval := uint8(DefaultRepeatInterval)
		if len(parts) == 3 {
			if interval, err = parseByte(parts[2], "repeat interval"); err != nil {
				return nil, err
			}
		}
		return RepeatButtonAction{Which: which, Interval: interval, Count: count}, nil

	case "dpi":
		switch rest {
		case "cycle":
			return DPISwitchAction{Mode: DPICycle}, nil
		case "up":
			return DPISwitchAction{Mode: DPIUp}, nil
		case "down":
			return DPISwitchAction{Mode: DPIDown}, nil
		}
		return nil, fmt.Errorf("invalid dpi switch mode %q", rest)

	case "dpi-lock":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid dpi-lock value %q", rest)
		}
		return DPILockAction{DPI: ClampDPI(n)}, nil

	case "media":
		buttons, err := ParseMediaButtons(rest)
		if err != nil {
			return nil, err
		}
		return MediaButtonAction{Buttons: buttons}, nil

	case "macro":
		parts := strings.Split(rest, ":")
		bank, err := parseByte(parts[0], "macro bank")
		if err != nil {
			return nil, err
		}
		action := MacroAction{Bank: bank, Mode: MacroBurst, Count: 1}
		if len(parts) == 1 {
			return action, nil
		}
		switch parts[1] {
		case "burst":
			if len(parts) == 3 {
				if action.Count, err = parseByte(parts[2], "macro burst count"); err != nil {
					return nil, err
				}
			} else if len(parts) > 3 {
				return nil, fmt.Errorf("invalid macro action %q", s)
			}
			return action, nil
		case "toggle":
			if len(parts) > 2 {
				return nil, fmt.Errorf("invalid macro action %q", s)
			}
			action.Mode = MacroRepeatUntilAnotherPress
			action.Count = 0
			return action, nil
		case "hold":
			if len(parts) > 2 {
				return nil, fmt.Errorf("invalid macro action %q", s)
			}
			action.Mode = MacroRepeatUntilRelease
			action.Count = 0
			return action, nil
		}
		return nil, fmt.Errorf("invalid macro mode %q", parts[1])

	case "keyboard":
		mods, keyName, hasMods := strings.Cut(rest, ":")
		if !hasMods {
			keyName, mods = mods, ""
		}
		var modifiers Modifiers
		if mods != "" {
			var err error
			if modifiers, err = ParseModifiers(mods); err != nil {
				return nil, err
			}
		}
		key, ok := KeyByName(keyName)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", keyName)
		}
		return KeyboardShortcutAction{Modifiers: modifiers, Key: key}, nil
	}

	return nil, fmt.Errorf("unknown action %q", head)
}

func parseByte(s, what string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return uint8(n), nil
}
