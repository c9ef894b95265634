package hdl

import (
	"strconv"
	"strings"

	"github.com/pbnjay/cupl/internal/gal16v8"
)

// renderColumnSignal renders a single AND-array column reference:
// a named, optionally-negated pin, or an unnamed, optionally-negated
// flop output (flop outputs are never remapped through the naming
// context).
func renderColumnSignal(namer PinNamer, sig gal16v8.ColumnSignal) string {
	var sb strings.Builder
	if sig.Negated {
		sb.WriteByte('~')
	}
	switch sig.Kind {
	case gal16v8.ColumnFlopOut:
		sb.WriteString("q")
		sb.WriteString(strconv.Itoa(sig.OLMC))
	default:
		sb.WriteString(namer.Name(sig.Pin))
	}
	return sb.String()
}

// renderProductTerm &-joins a product term's factors, parenthesizing
// when there are two or more.
func renderProductTerm(namer PinNamer, p gal16v8.ProductTerm) string {
	if len(p.Factors) == 0 {
		return "1'b1"
	}
	parts := make([]string, len(p.Factors))
	for i, f := range p.Factors {
		parts[i] = renderColumnSignal(namer, f)
	}
	joined := strings.Join(parts, " & ")
	if len(parts) >= 2 {
		return "(" + joined + ")"
	}
	return joined
}

// renderSumTerm |-joins a sum term's products inside parens when there
// are two or more; an empty sum renders as the constant 1'b0.
func renderSumTerm(namer PinNamer, s gal16v8.SumTerm) string {
	if len(s.Products) == 0 {
		return "1'b0"
	}
	parts := make([]string, len(s.Products))
	for i, p := range s.Products {
		parts[i] = renderProductTerm(namer, p)
	}
	joined := strings.Join(parts, " | ")
	if len(parts) >= 2 {
		return "(" + joined + ")"
	}
	return joined
}

// renderXor prefixes ~ when the polarity bit is set, then renders the
// underlying sum term.
func renderXor(namer PinNamer, x gal16v8.Xor) string {
	if x.Negated {
		return "~" + renderSumTerm(namer, x.Sum)
	}
	return renderSumTerm(namer, x.Sum)
}
