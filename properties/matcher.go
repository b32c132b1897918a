package properties

import (
	"strings"
	"unicode"

	"github.com/wrapvtk/classprops/ir"
)

// isValidSuffix reports whether suffix — whatever remains of methName's
// property-prefix-stripped name after the candidate property name is
// removed — is an acceptable tail for methName's category: On/Off,
// SetXToFoo, GetXAsString/MinValue/MaxValue, RemoveAllXs, or the plural "s"
// a NumberOf accessor adds.
func isValidSuffix(methName, propertyName, suffix string) bool {
	switch {
	case suffix == "On" || suffix == "Off":
		return true

	case isSetMethod(methName) && strings.HasPrefix(suffix, "To") && len(suffix) > 2 &&
		(unicode.IsUpper(rune(suffix[2])) || unicode.IsDigit(rune(suffix[2]))):
		return true

	case isGetMethod(methName) &&
		((strings.HasPrefix(suffix, "As") && len(suffix) > 2 &&
			(unicode.IsUpper(rune(suffix[2])) || unicode.IsDigit(rune(suffix[2])))) ||
			suffix == "MinValue" || suffix == "MaxValue"):
		return true

	case isRemoveAllMethod(methName):
		return suffix == "s"

	case isGetNumberOfMethod(methName) || isSetNumberOfMethod(methName):
		if strings.HasPrefix(propertyName, "NumberOf") {
			return suffix == ""
		}
		return suffix == "s"

	case suffix == "":
		return true
	}

	return false
}

// methodMatchesProperty reports whether meth belongs to property: its name
// (after prefix/suffix stripping), type, and array count must all agree,
// with a handful of cross-checks for RemoveAll/NumberOf/boolean/enumerated
// methods. longMatch is set when the matched suffix was mandatory (e.g.
// GetNumberOfXs matching a property already named "NumberOfXs"), as opposed
// to optional (empty suffix).
func methodMatchesProperty(property *Property, meth *methodFacts) (matched bool, longMatch bool) {
	var methodBitfield Category
	switch meth.Access {
	case ir.Public:
		methodBitfield = property.PublicMethods
	case ir.Protected:
		methodBitfield = property.ProtectedMethods
	default:
		methodBitfield = property.PrivateMethods
	}

	propertyName := property.Name
	name := nameWithoutPrefix(meth.Name)
	if name == "" || propertyName == "" {
		return false, false
	}

	longMatch = false
	if isGetNumberOfMethod(meth.Name) || isSetNumberOfMethod(meth.Name) {
		if strings.HasPrefix(propertyName, "NumberOf") && len(propertyName) > 8 &&
			(unicode.IsUpper(rune(propertyName[8])) || unicode.IsDigit(rune(propertyName[8]))) {
			longMatch = true
		} else {
			// the method's own prefix is the longer "GetNumberOf"/"SetNumberOf"
			name = meth.Name[11:]
		}
	} else if isGetMinValueMethod(meth.Name) && strings.HasSuffix(propertyName, "MinValue") {
		longMatch = true
	} else if isGetMaxValueMethod(meth.Name) && strings.HasSuffix(propertyName, "MaxValue") {
		longMatch = true
	} else if isAsStringMethod(meth.Name) && strings.HasSuffix(propertyName, "AsString") {
		longMatch = true
	}

	if !strings.HasPrefix(name, propertyName) {
		return false, false
	}
	suffix := name[len(propertyName):]
	if !isValidSuffix(meth.Name, propertyName, suffix) {
		return false, false
	}

	methType := meth.ValueType.Unqualified()
	propertyType := property.ValueType

	if isRemoveAllMethod(meth.Name) &&
		methType.Base == ir.Void && !methType.IsIndirect() &&
		methodBitfield&(BasicAdd|MultiAdd) != 0 {
		return true, longMatch
	}

	if isGetNumberOfMethod(meth.Name) &&
		(methType.Base == ir.Int || methType.Base == ir.IDType) && !methType.IsIndirect() &&
		methodBitfield&(IndexGet|NthGet) != 0 {
		return true, longMatch
	}

	if isSetNumberOfMethod(meth.Name) &&
		(methType.Base == ir.Int || methType.Base == ir.IDType) && !methType.IsIndirect() &&
		methodBitfield&(IndexSet|NthSet) != 0 {
		return true, longMatch
	}

	switch methType.Indirection {
	case ir.Ref:
		methType.Indirection = ir.Direct
	case ir.PointerRef:
		methType.Indirection = ir.Pointer
	case ir.ConstPointerRef:
		methType.Indirection = ir.ConstPointer
	}

	if meth.IsMultiValue {
		switch methType.Indirection {
		case ir.Pointer:
			methType.Indirection = ir.PointerPointer
		case ir.Direct:
			methType.Indirection = ir.Pointer
		default:
			return false, longMatch
		}
	}

	if meth.IsBoolean || meth.IsEnumerated ||
		(isAsStringMethod(meth.Name) && methType.Base == ir.Char && methType.Indirection == ir.Pointer) {
		if !propertyType.IsIndirect() &&
			(propertyType.Base == ir.Int || propertyType.Base == ir.UnsignedInt ||
				propertyType.Base == ir.UnsignedChar ||
				(meth.IsBoolean && propertyType.Base == ir.Bool)) {
			methType = propertyType
		}
	}

	if methType != propertyType || meth.Count != property.Count {
		return false, longMatch
	}

	if methType.Base == ir.VTKObject {
		if meth.IsMultiValue || !methType.IsPointer() || meth.Count != 0 ||
			meth.ClassName == "" || property.ClassName == "" ||
			meth.ClassName != property.ClassName {
			return false, longMatch
		}
	}

	return true, longMatch
}
