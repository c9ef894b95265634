// Package pinmap loads a user-supplied pin-name map file: a YAML
// document mapping pin numbers to display strings. It is the only
// place in this repository that does file I/O for pin naming — the
// decoder and HDL emitter only ever see the resulting map through the
// hdl.PinNamer interface.
package pinmap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file of {pin: name} pairs and returns it as a
// plain map. An empty or missing name for a pin is treated the same
// as the pin being absent (callers fall back to the default p{n}).
func Load(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pinmap: read %s: %w", path, err)
	}

	raw := make(map[int]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pinmap: parse %s: %w", path, err)
	}

	out := make(map[int]string, len(raw))
	for pin, name := range raw {
		if name == "" {
			continue
		}
		out[pin] = name
	}
	return out, nil
}

// Validate reports an error if any mapped pin number falls outside
// [1, numPins]. The loader itself is chip-agnostic; the caller knows
// the device's pin count.
func Validate(m map[int]string, numPins int) error {
	for pin := range m {
		if pin < 1 || pin > numPins {
			return fmt.Errorf("pinmap: pin %d out of range [1,%d]", pin, numPins)
		}
	}
	return nil
}
