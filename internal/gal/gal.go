// Package gal holds the raw fuse-vector container shape shared by the
// JEDEC encoder (internal/jed) and this repository's fixture-building
// tests: a GAL's AND-array grid plus its XOR/signature/AC1/PT/SYN/AC0
// fields, sized from a Chip's array shape.
package gal

// GAL is a raw, unvalidated fuse-vector container for a single device.
// Every AND-array fuse defaults to blown (true); the XOR, signature,
// AC1, PT, SYN and AC0 fields start cleared (false).
type GAL struct {
	Chip Chip

	Fuses []bool
	Xor   []bool
	Sig   []bool
	AC1   []bool
	PT    []bool
	Syn   bool
	AC0   bool
}

// NewGAL allocates a blown GAL for chip.
func NewGAL(chip Chip) *GAL {
	logicSize := chip.NumRows() * chip.NumCols()
	olmcs := chip.NumOLMCs()
	g := &GAL{
		Chip:  chip,
		Fuses: make([]bool, logicSize),
		Xor:   make([]bool, olmcs),
		Sig:   make([]bool, 64),
		AC1:   make([]bool, olmcs),
		PT:    make([]bool, 64),
		Syn:   false,
		AC0:   false,
	}
	for i := range g.Fuses {
		g.Fuses[i] = true
	}
	return g
}
