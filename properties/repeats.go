package properties

import "github.com/wrapvtk/classprops/ir"

// resolveRepeats pairs up methods that differ only by overload details —
// float vs double, a smaller vs larger array, legacy vs current — and marks
// the loser of each pair IsRepeat. It returns, for every index, the index of
// the sibling that superseded it, or -1 if the method was not a repeat (or
// had no sibling).
//
// This runs once, before any property is seeded, so that a repeat loser
// never gets the chance to seed or join a property under its own name.
func resolveRepeats(methods []methodFacts) []int {
	winner := make([]int, len(methods))
	for i := range winner {
		winner[i] = -1
	}

	for i := range methods {
		if !methods[i].HasProperty || methods[i].IsRepeat {
			continue
		}
		attrs := &methods[i]

		for j := range methods {
			if j == i {
				continue
			}
			meth := &methods[j]
			if meth.Name == "" || meth.Name != attrs.Name {
				continue
			}
			if ir.IndirectionOf(attrs.ValueType) != ir.IndirectionOf(meth.ValueType) ||
				attrs.Access != meth.Access ||
				attrs.IsHinted != meth.IsHinted ||
				attrs.IsMultiValue != meth.IsMultiValue ||
				attrs.IsIndexed != meth.IsIndexed ||
				attrs.IsEnumerated != meth.IsEnumerated ||
				attrs.IsBoolean != meth.IsBoolean {
				continue
			}

			switch {
			case prefers(meth, attrs):
				attrs.IsRepeat = true
				winner[i] = j
			case prefers(attrs, meth):
				meth.IsRepeat = true
				winner[j] = i
			default:
				continue
			}
			break
		}
	}

	return winner
}

// prefers reports whether a should be kept over b under the
// (double > float, larger array count, non-legacy) tie-break order from
// spec.md §4.4.
func prefers(a, b *methodFacts) bool {
	aBase := ir.BaseTypeOf(a.ValueType)
	bBase := ir.BaseTypeOf(b.ValueType)

	if aBase == ir.Double && bBase == ir.Float {
		return true
	}
	if aBase == ir.Float && bBase == ir.Double {
		return false
	}
	if aBase == bBase && a.Count != b.Count {
		return a.Count > b.Count
	}
	return !a.IsLegacy && b.IsLegacy
}
