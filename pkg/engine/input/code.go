package input

import (
	"fmt"
	"sort"
	"strings"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

var deviceNames = map[Device]string{
	DeviceUnknown:  "unknown",
	DeviceKeyboard: "keyboard",
	DeviceGamepad:  "gamepad",
	DeviceTerminal: "terminal",
}

func (d Device) String() string {
	if name, ok := deviceNames[d]; ok {
		return name
	}
	return deviceNames[DeviceUnknown]
}

// Code is a raw input identifier: a device plus a device-specific name
// (e.g. "ArrowUp" on the keyboard, "button_0" on a gamepad, "arrow_up" in a
// terminal). It is comparable and is the raw-input key used by the hosts.
type Code struct {
	Device Device
	Name   string
}

// KeyboardCode returns the Code for a keyboard key name.
func KeyboardCode(name string) Code {
	return Code{Device: DeviceKeyboard, Name: name}
}

// GamepadCode returns the Code for a gamepad button or axis name.
func GamepadCode(name string) Code {
	return Code{Device: DeviceGamepad, Name: name}
}

// TerminalCode returns the Code for a key read from a terminal.
func TerminalCode(name string) Code {
	return Code{Device: DeviceTerminal, Name: name}
}

// String formats the code as "device:name".
func (c Code) String() string {
	return c.Device.String() + ":" + c.Name
}

// ParseDevice parses a device name as produced by Device.String.
func ParseDevice(s string) (Device, error) {
	for d, n := range deviceNames {
		if d != DeviceUnknown && n == s {
			return d, nil
		}
	}
	return DeviceUnknown, fmt.Errorf("unknown device %q", s)
}

// ParseCode parses the "device:name" form produced by String.
func ParseCode(s string) (Code, error) {
	dev, name, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return Code{}, fmt.Errorf("invalid input code %q: want device:name", s)
	}
	d, err := ParseDevice(dev)
	if err != nil {
		return Code{}, fmt.Errorf("invalid input code %q: %w", s, err)
	}
	return Code{Device: d, Name: name}, nil
}

// SortCodes orders codes by device then name so listings don't flicker.
func SortCodes(codes []Code) {
	sort.Slice(codes, func(i, j int) bool {
		if codes[i].Device != codes[j].Device {
			return codes[i].Device < codes[j].Device
		}
		return codes[i].Name < codes[j].Name
	})
}
