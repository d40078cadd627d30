// Package console runs text commands against the live bindings. The same
// commands serve the in-game console and the bindings section of the config
// file.
package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/controls"
)

const maxOutput = 100

// ErrUsage is returned for a command with the wrong number of arguments.
var ErrUsage = errors.New("usage")

// Console executes commands and keeps their output.
type Console struct {
	manager *controls.Manager
	router  *controls.Router

	output []string
}

// New creates a console over the session's manager and router.
func New(m *controls.Manager, r *controls.Router) *Console {
	return &Console{manager: m, router: r}
}

// Output returns the output lines, oldest first.
func (c *Console) Output() []string {
	return c.output
}

// Clear drops all output.
func (c *Console) Clear() {
	c.output = nil
}

func (c *Console) print(format string, a ...any) {
	c.output = append(c.output, fmt.Sprintf(format, a...))
	if len(c.output) > maxOutput {
		c.output = c.output[len(c.output)-maxOutput:]
	}
}

// Execute parses and executes a command line, echoing it to the output.
// Errors are printed as well as returned.
func (c *Console) Execute(line string) error {
	line = strings.TrimSpace(line)
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	c.print("> %s", line)

	err := c.run(strings.ToLower(parts[0]), parts[1:])
	if errors.Is(err, ErrUsage) {
		c.print("Usage: %s", usage[strings.ToLower(parts[0])])
	} else if err != nil {
		c.print("%v", err)
	}
	return err
}

var usage = map[string]string{
	"bind":   "bind <control> <device:name>",
	"rebind": "rebind <button> <device:name>",
	"unbind": "unbind <device:name>",
	"list":   "list [device]",
	"clear":  "clear",
	"help":   "help",
}

func (c *Console) run(command string, args []string) error {
	switch command {
	case "bind", "rebind":
		if len(args) != 2 {
			return ErrUsage
		}
		return c.bind(args[0], args[1], command == "rebind")

	case "unbind":
		if len(args) != 1 {
			return ErrUsage
		}
		return c.unbind(args[0])

	case "list":
		if len(args) > 1 {
			return ErrUsage
		}
		return c.list(args)

	case "clear":
		c.Clear()
		return nil

	case "help":
		c.print("Commands:")
		names := make([]string, 0, len(usage))
		for name := range usage {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			c.print("  %s", usage[name])
		}
		c.print("Controls: fire, slow, rebind, quit, horizontal[+|-], vertical[+|-]")
		return nil

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", command)
	}
}

// bind routes code to the named control. With replace, every other input of
// the control is unbound first.
func (c *Console) bind(control, raw string, replace bool) error {
	binding, dir, err := controls.ParseControl(control)
	if err != nil {
		return err
	}
	code, err := input.ParseCode(raw)
	if err != nil {
		return err
	}
	if controls.Reserved(c.manager, code) {
		if current, _ := c.manager.Binding(code); current != binding {
			return fmt.Errorf("%s is reserved for %s", code, controls.Name(current))
		}
	}

	switch {
	case replace && binding.Kind != input.KindButton:
		return fmt.Errorf("rebind works on buttons only, use unbind and bind for %s", controls.Name(binding))
	case replace:
		controls.ReplaceButton(c.manager, c.router, binding.Button, code)
	case binding.Kind == input.KindButton:
		controls.AddButton(c.manager, c.router, binding.Button, code)
	case dir == input.DirectionNone:
		controls.AddAnalog(c.manager, c.router, binding.Axis, code)
	default:
		controls.AddDigital(c.manager, c.router, binding.Axis, dir, code)
	}

	c.print("Bound %s to %s", code, controls.Name(binding))
	return nil
}

func (c *Console) unbind(raw string) error {
	code, err := input.ParseCode(raw)
	if err != nil {
		return err
	}
	binding, ok := c.manager.Binding(code)
	if !ok {
		return fmt.Errorf("%s is not bound", code)
	}
	if controls.Reserved(c.manager, code) && len(c.manager.InputsFor(binding)) == 1 {
		return fmt.Errorf("%s is the last input for %s", code, controls.Name(binding))
	}

	controls.Unbind(c.manager, c.router, code)
	c.print("Unbound %s from %s", code, controls.Name(binding))
	return nil
}

func (c *Console) list(args []string) error {
	device := input.DeviceUnknown
	if len(args) == 1 {
		d, err := input.ParseDevice(args[0])
		if err != nil {
			return err
		}
		device = d
	}

	for _, e := range controls.Listing(c.manager) {
		var names []string
		for _, code := range e.Codes {
			if device == input.DeviceUnknown || code.Device == device {
				names = append(names, code.String())
			}
		}
		c.print("%-10s %s", e.Name, strings.Join(names, ", "))
	}
	return nil
}

// BindAll applies the bindings section of the config file: each key is a
// control name, each value a list of codes added to it. Entries are applied
// in sorted order so failures are reported deterministically.
func (c *Console) BindAll(bindings map[string][]string) error {
	controlNames := make([]string, 0, len(bindings))
	for name := range bindings {
		controlNames = append(controlNames, name)
	}
	sort.Strings(controlNames)

	var errs []error
	for _, name := range controlNames {
		for _, raw := range bindings[name] {
			if err := c.bind(name, raw, false); err != nil {
				errs = append(errs, fmt.Errorf("binding %s to %s: %w", raw, name, err))
			}
		}
	}
	return errors.Join(errs...)
}
