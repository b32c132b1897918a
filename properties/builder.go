package properties

import "github.com/wrapvtk/classprops/ir"

// Synthesize recovers the properties a class exposes from its declared
// methods. It is a pure function: it mutates nothing in class, and the
// returned ClassProperties shares only immutable strings (method names and
// comments) with it.
func Synthesize(class *ir.ClassInfo) *ClassProperties {
	methods := make([]methodFacts, len(class.Functions))
	for i := range class.Functions {
		facts, ok := extractMethodFacts(&class.Functions[i])
		facts.HasProperty = ok
		methods[i] = facts
	}

	repeatWinner := resolveRepeats(methods)

	out := &ClassProperties{
		MethodCategory: make([]Category, len(methods)),
		MethodProperty: make([]int, len(methods)),
	}
	for i := range out.MethodProperty {
		out.MethodProperty[i] = -1
	}

	matched := make([]bool, len(methods))
	for i, m := range methods {
		if !m.HasProperty || m.IsRepeat {
			matched[i] = true
		}
	}

	runSweep(methods, out, matched, func(m *methodFacts) bool {
		return isSetMethod(m.Name) && !m.IsEnumerated && !isSetNumberOfMethod(m.Name)
	})
	runSweep(methods, out, matched, func(m *methodFacts) bool {
		return isSetNumberOfMethod(m.Name)
	})
	runSweep(methods, out, matched, func(m *methodFacts) bool {
		return isGetMethod(m.Name) && !isAsStringMethod(m.Name) && !isGetNumberOfMethod(m.Name)
	})
	runSweep(methods, out, matched, func(m *methodFacts) bool {
		return isGetNumberOfMethod(m.Name)
	})
	runSweep(methods, out, matched, func(m *methodFacts) bool {
		return isAddMethod(m.Name)
	})

	// Mirror every repeat loser's classification from the sibling that
	// superseded it, regardless of whether that sibling was a sweep seed or
	// was folded in later by findAllMatches.
	for i, w := range repeatWinner {
		if w < 0 {
			continue
		}
		out.MethodCategory[i] = out.MethodCategory[w]
		out.MethodProperty[i] = out.MethodProperty[w]
	}

	return out
}

// runSweep seeds a new property from every not-yet-matched method that
// satisfies want, in input order, folding in every other compatible method
// each time via findAllMatches.
func runSweep(methods []methodFacts, out *ClassProperties, matched []bool, want func(*methodFacts) bool) {
	for i := range methods {
		if matched[i] || !want(&methods[i]) {
			continue
		}
		addProperty(methods, out, matched, i)
	}
}

// addProperty seeds a property from the method at index i, then folds in
// every other compatible method in the class via findAllMatches.
func addProperty(methods []methodFacts, out *ClassProperties, matched []bool, i int) {
	meth := &methods[i]
	matched[i] = true

	category := methodCategory(meth, false)
	propertyID := len(out.Properties)
	out.MethodCategory[i] = category
	out.MethodProperty[i] = propertyID

	property := initializeProperty(meth, category)
	findAllMatches(methods, &property, propertyID, out, matched)

	out.Properties = append(out.Properties, property)
}

// initializeProperty seeds a Property from the method that discovered it.
// This is only valid for a method whose name has no optional suffix (On,
// Off, AsString, ToSomething, ...), i.e. the seed is always categorized in
// "full" form.
func initializeProperty(meth *methodFacts, category Category) Property {
	valueType := meth.ValueType
	if meth.IsBoolean || meth.IsEnumerated {
		valueType = ir.Type{Base: ir.Int}
	}

	base := ir.BaseTypeOf(valueType)
	switch {
	case !meth.IsMultiValue && (valueType.Indirection == ir.Pointer || valueType.Indirection == ir.PointerRef):
		valueType = ir.Type{Base: base, Indirection: ir.Pointer}
	case meth.IsMultiValue && (valueType.Indirection == ir.Direct || valueType.Indirection == ir.Ref):
		valueType = ir.Type{Base: base, Indirection: ir.Pointer}
	case !meth.IsMultiValue && (valueType.Indirection == ir.ConstPointer || valueType.Indirection == ir.ConstPointerRef):
		valueType = ir.Type{Base: base, Indirection: ir.ConstPointer}
	case valueType.Indirection == ir.PointerPointer || (valueType.Indirection == ir.Pointer && meth.IsMultiValue):
		valueType = ir.Type{Base: base, Indirection: ir.PointerPointer}
	default:
		valueType = ir.Type{Base: base, Indirection: valueType.Indirection}
	}

	property := Property{
		Name:      nameWithoutPrefix(meth.Name),
		ValueType: valueType,
		ClassName: meth.ClassName,
		Count:     meth.Count,
		IsStatic:  meth.IsStatic,
		Comment:   meth.Comment,
	}

	switch meth.Access {
	case ir.Public:
		property.PublicMethods = category
	case ir.Protected:
		property.ProtectedMethods = category
	default:
		property.PrivateMethods = category
	}
	if meth.IsLegacy {
		property.LegacyMethods = category
	}

	return property
}

// findAllMatches repeatedly scans methods for any unmatched, property-shaped
// method that methodMatchesProperty accepts, folding each one in, until a
// full scan adds nothing. A NumberOf match made on one pass can make a
// RemoveAll match admissible on the next, so a single pass is not enough.
func findAllMatches(methods []methodFacts, property *Property, propertyID int, out *ClassProperties, matched []bool) {
	for {
		foundAny := false

		for i := range methods {
			if matched[i] {
				continue
			}
			meth := &methods[i]
			matchedNow, longMatch := methodMatchesProperty(property, meth)
			if !matchedNow {
				continue
			}

			matched[i] = true
			foundAny = true

			if meth.IsStatic {
				property.IsStatic = true
			}

			category := methodCategory(meth, !longMatch)
			out.MethodCategory[i] = category
			out.MethodProperty[i] = propertyID

			switch meth.Access {
			case ir.Public:
				property.PublicMethods |= category
			case ir.Protected:
				property.ProtectedMethods |= category
			default:
				property.PrivateMethods |= category
			}
			if meth.IsLegacy {
				property.LegacyMethods |= category
			}

			if meth.IsEnumerated {
				if suffix, ok := enumConstantSuffix(meth.Name, property.Name); ok {
					property.EnumConstantNames = append(property.EnumConstantNames, suffix)
				}
			}
		}

		if !foundAny {
			return
		}
	}
}

// enumConstantSuffix extracts the "Foo" constant name from a SetXToFoo()
// method, given the already-resolved property name X.
func enumConstantSuffix(methodName, propertyName string) (string, bool) {
	prefixLen := 3 + len(propertyName) // "Set" + property name
	if prefixLen+2 >= len(methodName) {
		return "", false
	}
	if methodName[prefixLen] != 'T' || methodName[prefixLen+1] != 'o' {
		return "", false
	}
	return methodName[prefixLen+2:], true
}
