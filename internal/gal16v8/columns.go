package gal16v8

import "github.com/pbnjay/cupl/internal/fuses"

// NumColumns is the AND array's column width for every GAL16V8 mode.
const NumColumns = 32

// olmcCount is the number of output logic macrocells on a GAL16V8.
const olmcCount = 8

// BuildColumnTable builds the ordered 32-entry column signal table for
// the AND array. Only Registered mode is implemented; Complex and
// Simple are explicit design points left for a vendor-architecture-sheet
// follow-up (see DESIGN.md) and report ErrUnsupportedMode.
func BuildColumnTable(mode Mode, f fuses.Map) ([]ColumnSignal, error) {
	if mode != ModeRegistered {
		return nil, ErrUnsupportedMode
	}

	cols := make([]ColumnSignal, 0, NumColumns)
	for i := 0; i < olmcCount; i++ {
		direct := Pin(i + 2)
		cols = append(cols, direct, direct.Inverted())

		fb := feedbackSignal(f, i)
		cols = append(cols, fb, fb.Inverted())
	}
	return cols, nil
}

// feedbackSignal returns the feedback column for macrocell i: the
// register's Q output when AC1[i]=0, or the external output pin
// (combinational feedback) when AC1[i]=1.
func feedbackSignal(f fuses.Map, olmc int) ColumnSignal {
	if f.AC1(olmc) {
		return Pin(19 - olmc)
	}
	return FlopOut(olmc)
}
