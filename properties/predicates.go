package properties

import (
	"strings"
	"unicode"
)

// prefixRule is a table-driven name predicate: name matches when it starts
// with Prefix and, if RequireUpperAfter is set, the character right after
// the prefix is uppercase or a digit (so "Setup" is never mistaken for a
// setter of "up").
type prefixRule struct {
	Prefix            string
	RequireUpperAfter bool
}

func (r prefixRule) matches(name string) bool {
	if len(name) <= len(r.Prefix) || !strings.HasPrefix(name, r.Prefix) {
		return false
	}
	if !r.RequireUpperAfter {
		return true
	}
	c := rune(name[len(r.Prefix)])
	return unicode.IsUpper(c) || unicode.IsDigit(c)
}

var (
	setRule    = prefixRule{"Set", true}
	getRule    = prefixRule{"Get", true}
	addRule    = prefixRule{"Add", true}
	removeRule = prefixRule{"Remove", true}
)

// isSetMethod reports whether name has the form SetX.
func isSetMethod(name string) bool { return setRule.matches(name) }

// isGetMethod reports whether name has the form GetX.
func isGetMethod(name string) bool { return getRule.matches(name) }

// isAddMethod reports whether name has the form AddX.
func isAddMethod(name string) bool { return addRule.matches(name) }

// isRemoveMethod reports whether name has the form RemoveX.
func isRemoveMethod(name string) bool { return removeRule.matches(name) }

// isSetNthMethod reports whether name has the form SetNthX.
func isSetNthMethod(name string) bool {
	return isSetMethod(name) && (prefixRule{"SetNth", true}).matches(name)
}

// isGetNthMethod reports whether name has the form GetNthX.
func isGetNthMethod(name string) bool {
	return isGetMethod(name) && (prefixRule{"GetNth", true}).matches(name)
}

// isRemoveAllMethod reports whether name has the form RemoveAllXs.
func isRemoveAllMethod(name string) bool {
	return isRemoveMethod(name) &&
		(prefixRule{"RemoveAll", true}).matches(name) &&
		strings.HasSuffix(name, "s")
}

// isSetNumberOfMethod reports whether name has the form SetNumberOfXs.
func isSetNumberOfMethod(name string) bool {
	return isSetMethod(name) &&
		(prefixRule{"SetNumberOf", true}).matches(name) &&
		strings.HasSuffix(name, "s")
}

// isGetNumberOfMethod reports whether name has the form GetNumberOfXs.
func isGetNumberOfMethod(name string) bool {
	return isGetMethod(name) &&
		(prefixRule{"GetNumberOf", true}).matches(name) &&
		strings.HasSuffix(name, "s")
}

// isBooleanMethod reports whether name ends in "On" or "Off", e.g.
// ColorOn()/ColorOff().
func isBooleanMethod(name string) bool {
	return strings.HasSuffix(name, "On") || strings.HasSuffix(name, "Off")
}

// isEnumeratedMethod reports whether name has the form SetValueToFoo, where
// Foo starts with an uppercase letter or digit. The "To" may appear
// anywhere after the "Set" prefix, matching the original parser's scan.
func isEnumeratedMethod(name string) bool {
	if !isSetMethod(name) {
		return false
	}
	limit := len(name) - 2
	for i := 3; i < limit; i++ {
		if name[i] == 'T' && name[i+1] == 'o' {
			c := rune(name[i+2])
			if unicode.IsUpper(c) || unicode.IsDigit(c) {
				return true
			}
		}
	}
	return false
}

// isAsStringMethod reports whether name has the form GetXAsString.
func isAsStringMethod(name string) bool {
	return isGetMethod(name) && len(name) > 11 && strings.HasSuffix(name, "AsString")
}

// isGetMinValueMethod reports whether name has the form GetXMinValue.
func isGetMinValueMethod(name string) bool {
	return isGetMethod(name) && len(name) > 11 && strings.HasSuffix(name, "MinValue")
}

// isGetMaxValueMethod reports whether name has the form GetXMaxValue.
func isGetMaxValueMethod(name string) bool {
	return isGetMethod(name) && len(name) > 11 && strings.HasSuffix(name, "MaxValue")
}

// nameWithoutPrefix strips the recognized Set/Get/Add/Remove/Nth/RemoveAll
// prefix from name, returning the bare property-name candidate.
func nameWithoutPrefix(name string) string {
	switch {
	case isGetNthMethod(name), isSetNthMethod(name):
		return name[6:]
	case isRemoveAllMethod(name):
		return name[9:]
	case isGetMethod(name), isSetMethod(name), isAddMethod(name):
		return name[3:]
	case isRemoveMethod(name):
		return name[6:]
	default:
		return name
	}
}
