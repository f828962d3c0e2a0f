package mediatype

import (
	"math"
	"slices"

	sfutils "github.com/CxRes/sf-utils"
	"github.com/dunglas/httpsfv"
)

// qualityName is the reserved parameter carrying the RFC 9110 quality
// weight. It never takes part in matching and does not count as a
// distinguishing parameter when sorting.
const qualityName = "q"

// Sort returns the items reordered for server-driven negotiation: descending
// quality, then descending type/subtype specificity, then descending non-q
// parameter count. The input slice is left untouched. The comparator admits
// ties, so the relative order of items it cannot distinguish is not a
// documented guarantee.
func Sort(items []httpsfv.Item) []httpsfv.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compareItems)
	return sorted
}

// compareItems chains the three discriminators; the first non-zero result
// decides.
func compareItems(a, b httpsfv.Item) int {
	if d := qualityScore(b.Params) - qualityScore(a.Params); d != 0 {
		return d
	}
	if d := compareSpecificity(a, b); d != 0 {
		return d
	}
	return countDistinguishing(b.Params) - countDistinguishing(a.Params)
}

// qualityScore maps an item's q parameter onto the integer scale used for
// ordering. An absent q means maximum preference and scores 1000, as does an
// exact 1. A value strictly between 0 and 1 scores floor(q*1000), truncating
// rather than rounding (0.9999 scores 999). Everything else, including
// non-numeric values, scores 0: absence and invalidity sit at opposite ends
// of the scale.
func qualityScore(params *httpsfv.Params) int {
	if params == nil {
		return 1000
	}
	v, ok := params.Get(qualityName)
	if !ok {
		return 1000
	}
	q, ok := toFloat(v)
	if !ok {
		return 0
	}
	switch {
	case q == 1:
		return 1000
	case q > 0 && q < 1:
		return int(math.Floor(q * 1000))
	default:
		return 0
	}
}

// toFloat extracts the numeric value of a bare item. The parser produces
// RFC 8941 integers as int64 and decimals as float64; every other type is
// non-numeric.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// compareSpecificity orders two quality-tied items by how narrowly their
// type/subtype pair constrains. */* sorts after everything else, a wildcard
// subtype sorts after a concrete one, and any other pairing is a tie; suffix
// specificity (+json and friends) is not considered.
func compareSpecificity(a, b httpsfv.Item) int {
	aType, aSub, _ := Split(sfutils.ValueString(a.Value))
	bType, bSub, _ := Split(sfutils.ValueString(b.Value))

	switch {
	case aType == bType && aSub == bSub:
		return 0
	case aType == "*" && aSub == "*":
		return 1
	case bType == "*" && bSub == "*":
		return -1
	case aSub == "*" && bSub == "*":
		return 0
	case aSub == "*":
		return 1
	case bSub == "*":
		return -1
	default:
		return 0
	}
}

// countDistinguishing counts an item's parameters excluding q.
func countDistinguishing(params *httpsfv.Params) int {
	if params == nil {
		return 0
	}
	n := len(params.Names())
	if _, ok := params.Get(qualityName); ok {
		n--
	}
	return n
}
