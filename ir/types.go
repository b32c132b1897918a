// Package ir holds the parser-produced intermediate representation that the
// property synthesizer consumes as an immutable black box: classes, their
// methods, and the value/type information attached to arguments and return
// values. Nothing in this package parses C++ — it only models what an
// upstream parser would hand over, the way vtkParseData.h does for the
// original toolkit.
package ir

// Access records the C++ access specifier under which a method or member
// was declared.
type Access int

const (
	Public Access = iota
	Protected
	Private
)

// BaseType names a type's fundamental kind, independent of indirection.
type BaseType int

const (
	Void BaseType = iota
	Int
	Bool
	Char
	UnsignedInt
	UnsignedChar
	Float
	Double
	IDType
	VTKObject
	Function
)

// Indirection records how a type is reached: by value, pointer, reference,
// or some combination thereof.
type Indirection int

const (
	Direct Indirection = iota
	Pointer
	Ref
	PointerRef
	ConstPointer
	ConstPointerRef
	PointerPointer
)

// Qualifier is a bitmask of type qualifiers orthogonal to base type and
// indirection.
type Qualifier int

const (
	Unqualified Qualifier = 0
	ConstQual   Qualifier = 1 << (iota - 1)
	StaticQual
)

// Type is a normalized value type: base kind, indirection, and qualifiers.
// It plays the role of the bitfield type code used throughout
// vtkParseProperties.c, but as a plain struct rather than a packed int.
type Type struct {
	Base        BaseType
	Indirection Indirection
	Qualifiers  Qualifier
}

// HasQualifier reports whether any of the given qualifier bits are set.
func (t Type) HasQualifier(q Qualifier) bool {
	return t.Qualifiers&q != 0
}

// IsConst reports whether the type carries the const qualifier.
func (t Type) IsConst() bool {
	return t.HasQualifier(ConstQual)
}

// IsStatic reports whether the type carries the static qualifier.
func (t Type) IsStatic() bool {
	return t.HasQualifier(StaticQual)
}

// IsIndirect reports whether the type is reached through any pointer or
// reference.
func (t Type) IsIndirect() bool {
	return t.Indirection != Direct
}

// IsPointer reports whether the type's indirection is some form of pointer
// (not a plain reference).
func (t Type) IsPointer() bool {
	switch t.Indirection {
	case Pointer, ConstPointer, PointerPointer:
		return true
	default:
		return false
	}
}

// Unqualified returns t with const/static qualifiers stripped.
func (t Type) Unqualified() Type {
	t.Qualifiers = Unqualified
	return t
}

// BaseTypeOf returns t's base type, ignoring indirection and qualifiers.
func BaseTypeOf(t Type) BaseType { return t.Base }

// IndirectionOf returns t's indirection.
func IndirectionOf(t Type) Indirection { return t.Indirection }

// ValueInfo describes a single argument or return value: its type, an
// array count (0 for scalar), and — when the type denotes a toolkit object
// — the referenced class name.
type ValueInfo struct {
	Type      Type
	Count     int
	ClassName string
	HasHint   bool // return value has an explicit size hint (CountHint)
}

// FunctionInfo describes one declared method, in the shape the synthesizer
// needs: name, arguments, return value, access, and the handful of flags
// that the original parser surfaces on FunctionInfo.
type FunctionInfo struct {
	Name       string
	Comment    string
	Arguments  []ValueInfo
	Return     ValueInfo
	Access     Access
	IsStatic   bool
	IsLegacy   bool
	IsOperator bool
	// ArrayFailure mirrors the original parser's flag for an argument whose
	// array dimensions could not be resolved; such a method cannot be
	// classified and is skipped by the extractor.
	ArrayFailure bool
}

// ClassInfo is the ordered list of a class's declared methods, exactly the
// slice the synthesizer walks. Namespacing, inheritance, and every other
// facet a real parser IR carries are deliberately absent — the synthesizer
// never looks past Functions (per spec.md, cross-class
// analysis is out of scope).
type ClassInfo struct {
	Name      string
	Functions []FunctionInfo
}
