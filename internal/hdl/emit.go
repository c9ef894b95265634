// Package hdl renders an elaborated gal16v8.Device as synthesizable
// Verilog, consulting an injected PinNamer for display names. Adding a
// second back end (a different HDL dialect, a graphviz render of the
// AND/OR plane) extends this package without touching the decoder.
package hdl

import (
	"fmt"
	"io"

	"github.com/pbnjay/cupl/internal/gal16v8"
)

// Emit writes dev as a Verilog module named GAL16V8 to w, using namer
// for pin display names. Emission is a pure function of (dev, namer):
// repeated calls on the same inputs produce byte-identical output.
func Emit(w io.Writer, dev *gal16v8.Device, namer PinNamer) error {
	bw := &errWriter{w: w}

	bw.printf("module GAL16V8 (\n")
	bw.printf(");\n")

	for _, cell := range dev.OLMCs {
		bw.printf("\n  /* OLMC %d */\n", cell.Idx)
		emitCell(bw, namer, cell)
	}

	bw.printf("endmodule\n")
	return bw.err
}

func emitCell(bw *errWriter, namer PinNamer, cell gal16v8.ElaboratedOLMC) {
	pinName := namer.Name(cell.OutPin())

	switch cell.Kind {
	case gal16v8.OLMCRegistered:
		if v, ok := cell.D.TriviallyConst(); ok {
			bw.printf("  assign %s = ~oe ? 1'b%d : 1'bz;\n", pinName, boolToBit(!v))
			return
		}
		bw.printf("  reg q%d;\n", cell.Idx)
		bw.printf("  always @(posedge clk)\n")
		bw.printf("    q%d <= %s;\n", cell.Idx, renderXor(namer, cell.D))
		bw.printf("  assign %s = ~oe ? ~q%d : 1'bz;\n", pinName, cell.Idx)
	case gal16v8.OLMCComplex:
		bw.printf("  assign %s = (%s) ? %s : 1'bz;\n", pinName, renderProductTerm(namer, cell.OE), renderXor(namer, cell.D))
	}
}

func boolToBit(v bool) int {
	if v {
		return 1
	}
	return 0
}

// errWriter swallows individual Fprintf calls so emitCell/Emit don't
// need to thread an error return through every line; the first error
// observed is retained and short-circuits subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, err := fmt.Fprintf(e.w, format, args...)
	if err != nil {
		e.err = fmt.Errorf("emit: %w", err)
	}
}
