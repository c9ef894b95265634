package hdl

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbnjay/cupl/internal/fuses"
	"github.com/pbnjay/cupl/internal/gal16v8"
)

const gridSize = 64 * 32
const synIndex = fuses.TotalFuses - 2
const ac0Index = fuses.TotalFuses - 1

func registeredBaseline() []bool {
	bits := make([]bool, fuses.TotalFuses)
	for i := 0; i < gridSize; i++ {
		bits[i] = true
	}
	bits[synIndex] = false
	bits[ac0Index] = true
	return bits
}

// Scenario S3 (spec.md §8): an empty registered cell renders as an
// always-hi-Z-or-constant-one tristate assign.
func TestEmit_S3_EmptyRegisteredCell(t *testing.T) {
	dev, err := gal16v8.NewDevice(registeredBaseline())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Emit(&buf, dev, DefaultNames{}))
	out := buf.String()

	for i := 0; i < 8; i++ {
		assert.Contains(t, out, "assign p"+strconv.Itoa(19-i)+" = ~oe ? 1'b1 : 1'bz;")
	}
}

// Scenario S4 (spec.md §8): pin 2 passed through macrocell 0's
// register renders a clocked update plus a tristate output driving ~Q.
func TestEmit_S4_RegisteredPassthrough(t *testing.T) {
	bits := registeredBaseline()
	bits[8*0+0] = false // row 0, column 0 (pin 2 direct)
	bits[2128+0] = true // PTD row 0

	dev, err := gal16v8.NewDevice(bits)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Emit(&buf, dev, DefaultNames{}))
	out := buf.String()

	assert.Contains(t, out, "always @(posedge clk)")
	assert.Contains(t, out, "q0 <= p2;")
	assert.Contains(t, out, "assign p19 = ~oe ? ~q0 : 1'bz;")
}

// Scenario S5 (spec.md §8): a trivially-bottom row 0 (pin 2 and its
// inverse both asserted) is dropped, so the cell renders identically
// to S3's pin-19 case even though its PTD and AND fuses are set.
func TestEmit_S5_TriviallyBottomRowDropped(t *testing.T) {
	bits := registeredBaseline()
	bits[8*0+0] = false // pin 2 direct
	bits[8*0+1] = false // pin 2 inverse, same row
	bits[2128+0] = true // PTD row 0

	dev, err := gal16v8.NewDevice(bits)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Emit(&buf, dev, DefaultNames{}))
	out := buf.String()
	assert.Contains(t, out, "assign p19 = ~oe ? 1'b1 : 1'bz;")
}

// Scenario S6 (spec.md §8): a Complex-kind cell with a non-trivial OE
// term renders a conditional tristate assign. Complex-mode decoding
// itself is out of scope (ErrUnsupportedMode), so this constructs the
// elaborated cell directly to exercise the renderer alone.
func TestEmit_S6_ComplexCellWithOE(t *testing.T) {
	cell := gal16v8.ElaboratedOLMC{
		Kind: gal16v8.OLMCComplex,
		Idx:  1,
		D: gal16v8.Xor{
			Sum: gal16v8.SumTerm{Products: []gal16v8.ProductTerm{
				{Factors: []gal16v8.ColumnSignal{gal16v8.Pin(4)}},
				{Factors: []gal16v8.ColumnSignal{gal16v8.Pin(5)}},
			}},
		},
		OE: gal16v8.ProductTerm{Factors: []gal16v8.ColumnSignal{gal16v8.Pin(3)}},
	}
	dev := &gal16v8.Device{Mode: gal16v8.ModeComplex, OLMCs: []gal16v8.ElaboratedOLMC{cell}}

	var buf strings.Builder
	require.NoError(t, Emit(&buf, dev, DefaultNames{}))
	assert.Contains(t, buf.String(), "assign p18 = (p3) ? (p4 | p5) : 1'bz;")
}

func TestStaticNames_FallsBackToDefault(t *testing.T) {
	names := StaticNames{12: "/CS0"}
	assert.Equal(t, "/CS0", names.Name(12))
	assert.Equal(t, "p13", names.Name(13))
}
