// Package gal16v8 decodes a GAL16V8 fuse map into an algebraic model
// of its programmed logic: mode resolution, the AND array's column
// table, per-macrocell product/sum terms, and the resulting
// elaborated output-logic macrocells. It performs no I/O; callers
// supply the flat fuse vector and consume the elaborated Device.
package gal16v8

import "github.com/pbnjay/cupl/internal/fuses"

// Device is the fully elaborated model of a programmed GAL16V8: its
// mode and the resolved logic for each of its 8 output macrocells.
// Constructed once by NewDevice; never mutated afterward.
type Device struct {
	Fuses fuses.Map
	Mode  Mode
	OLMCs []ElaboratedOLMC
}

// NewDevice decodes a raw 2194-bit fuse vector into an elaborated
// Device. It fails with fuses.ErrInvalidFuseLength, ErrInvalidModeBits,
// or ErrUnsupportedMode (Complex/Simple mode); never partially
// constructs a Device on error.
func NewDevice(bits []bool) (*Device, error) {
	f, err := fuses.New(bits)
	if err != nil {
		return nil, err
	}

	mode, err := ResolveMode(f.Syn(), f.AC0())
	if err != nil {
		return nil, err
	}

	cols, err := BuildColumnTable(mode, f)
	if err != nil {
		return nil, err
	}

	olmcs := make([]ElaboratedOLMC, olmcCount)
	for i := 0; i < olmcCount; i++ {
		olmcs[i] = elaborateOLMC(mode, f, cols, i)
	}

	return &Device{Fuses: f, Mode: mode, OLMCs: olmcs}, nil
}
