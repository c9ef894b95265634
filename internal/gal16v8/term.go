package gal16v8

import "github.com/pbnjay/cupl/internal/fuses"

// ProductTerm is an unordered set of ColumnSignals logically
// conjoined, represented as a deduplicated ordered sequence in the
// device's canonical column order. An empty product is the constant
// true (vacuously true AND).
type ProductTerm struct {
	Factors []ColumnSignal
}

// Contains reports whether sig appears in the product, polarity
// included.
func (p ProductTerm) Contains(sig ColumnSignal) bool {
	for _, f := range p.Factors {
		if f.Equal(sig) {
			return true
		}
	}
	return false
}

// IsAlwaysBottom reports whether the product contains both a signal
// and its inverse, making it trivially false. An empty product is
// true, not bottom.
func (p ProductTerm) IsAlwaysBottom() bool {
	for _, f := range p.Factors {
		if p.Contains(f.Inverted()) {
			return true
		}
	}
	return false
}

// SumTerm is an ordered sequence of ProductTerms logically disjoined.
// An empty sum is the constant false.
type SumTerm struct {
	Products []ProductTerm
}

// IsAlwaysBottom reports whether the sum has no terms (constant
// false).
func (s SumTerm) IsAlwaysBottom() bool {
	return len(s.Products) == 0
}

// BuildProductTerm extracts the product term for AND-array row r: the
// column table entries whose corresponding fuse is unblown (false),
// in the column table's canonical order, deduplicated.
func BuildProductTerm(f fuses.Map, cols []ColumnSignal, row int) ProductTerm {
	rowFuses := f.AndTermFuses(row)
	var factors []ColumnSignal
	for k, blown := range rowFuses {
		if blown {
			continue
		}
		sig := cols[k]
		dup := false
		for _, existing := range factors {
			if existing.Equal(sig) {
				dup = true
				break
			}
		}
		if !dup {
			factors = append(factors, sig)
		}
	}
	return ProductTerm{Factors: factors}
}

// rowRange returns the AND-array row range [lo, hi) feeding macrocell
// olmc, for the given OLMC type.
func rowRange(olmcType OLMCType, olmc int) (lo, hi int) {
	base := olmc * 8
	switch olmcType {
	case OLMCTypeCombFeedback:
		// Row base is reserved for the output-enable term.
		return base + 1, base + 8
	default:
		return base, base + 8
	}
}

// BuildSumTerm builds the sum term for macrocell olmc: the product
// terms of its assigned row range whose PTD fuse is set and which are
// not trivially bottom, preserving row order.
func BuildSumTerm(f fuses.Map, cols []ColumnSignal, olmcType OLMCType, olmc int) SumTerm {
	lo, hi := rowRange(olmcType, olmc)
	var products []ProductTerm
	for row := lo; row < hi; row++ {
		if !f.PTD(row) {
			continue
		}
		term := BuildProductTerm(f, cols, row)
		if term.IsAlwaysBottom() {
			continue
		}
		products = append(products, term)
	}
	return SumTerm{Products: products}
}
