package gal16v8

import "github.com/pbnjay/cupl/internal/fuses"

// OLMCType is the per-macrocell configuration implied by (Mode, AC1).
type OLMCType int

const (
	// OLMCTypeReg: a registered output; Mode=Registered, AC1=0.
	OLMCTypeReg OLMCType = iota
	// OLMCTypeCombFeedback: combinational output with output-enable
	// gating and pin feedback; Mode=Registered, AC1=1.
	OLMCTypeCombFeedback
)

// resolveOLMCType determines the OLMC type from mode and AC1[idx].
// Complex/Simple modes are an explicit design point (see columns.go);
// BuildColumnTable already rejects them before this is reached.
func resolveOLMCType(mode Mode, f fuses.Map, idx int) OLMCType {
	if f.AC1(idx) {
		return OLMCTypeCombFeedback
	}
	return OLMCTypeReg
}

// Xor pairs a value with a conditional-negation polarity bit.
type Xor struct {
	Sum     SumTerm
	Negated bool
}

// TriviallyConst reports whether the XOR'd sum reduces to a constant
// (the sum is bottom), returning (value, true) when it does.
func (x Xor) TriviallyConst() (bool, bool) {
	if x.Sum.IsAlwaysBottom() {
		return x.Negated, true
	}
	return false, false
}

// OLMCKind distinguishes the elaborated macrocell variants.
type OLMCKind int

const (
	// OLMCRegistered is a flop's D input plus XOR polarity.
	OLMCRegistered OLMCKind = iota
	// OLMCComplex is a combinational output gated by an OE product term.
	OLMCComplex
)

// ElaboratedOLMC is the fully resolved logic for one output macrocell.
type ElaboratedOLMC struct {
	Kind OLMCKind
	Idx  int
	D    Xor
	OE   ProductTerm // valid when Kind == OLMCComplex
}

// OutPin returns the device pin this macrocell drives.
func (e ElaboratedOLMC) OutPin() int {
	return 19 - e.Idx
}

// elaborateOLMC resolves macrocell idx to its tagged variant.
func elaborateOLMC(mode Mode, f fuses.Map, cols []ColumnSignal, idx int) ElaboratedOLMC {
	ty := resolveOLMCType(mode, f, idx)
	d := Xor{Sum: BuildSumTerm(f, cols, ty, idx), Negated: f.Xor(idx)}

	switch ty {
	case OLMCTypeCombFeedback:
		oeRow := idx * 8
		return ElaboratedOLMC{
			Kind: OLMCComplex,
			Idx:  idx,
			D:    d,
			OE:   BuildProductTerm(f, cols, oeRow),
		}
	default:
		return ElaboratedOLMC{Kind: OLMCRegistered, Idx: idx, D: d}
	}
}
