package properties

import "github.com/wrapvtk/classprops/ir"

// Property is an inferred logical attribute exposed by a class: the
// settable/gettable value that a family of Set/Get/Add/Remove methods all
// agree on. Every field other than Name, ValueType, Count, ClassName, and
// Comment is an aggregate over the property's member methods.
type Property struct {
	// Name is the method name with its Set/Get/Add/Remove/Nth prefix
	// stripped, e.g. "Radius" for SetRadius/GetRadius.
	Name string

	ValueType ir.Type
	Count     int
	ClassName string

	// IsStatic is true if any member method is static.
	IsStatic bool

	PublicMethods    Category
	ProtectedMethods Category
	PrivateMethods   Category
	LegacyMethods    Category

	// EnumConstantNames lists the Foo suffixes of SetXToFoo() methods that
	// joined this property, in discovery order. Duplicates are permitted.
	EnumConstantNames []string

	// Comment is the seed method's documentation, i.e. whichever method
	// first caused this property to be synthesized.
	Comment string
}

// ClassProperties is the synthesizer's output for one class: the ordered
// list of inferred properties, plus two arrays parallel to the class's
// input method list. MethodCategory[i] is 0 and MethodProperty[i] is -1 for
// any method that could not be classified; a repeat method mirrors the
// category and property index of the overload that superseded it.
//
// A ClassProperties is produced once, in full, by Synthesize, and is never
// mutated afterward; every string it holds is borrowed from the ir.ClassInfo
// it was derived from.
type ClassProperties struct {
	Properties     []Property
	MethodCategory []Category
	MethodProperty []int
}
