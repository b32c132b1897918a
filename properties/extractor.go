package properties

import "github.com/wrapvtk/classprops/ir"

// methodFacts lays out a method's signature in a shape that makes it easy
// to find other methods acting on the same property. Only property-shaped
// methods fit this struct; methodFacts for everything else carries
// HasProperty == false, with only the fields copied straight from the
// signature (Name, Comment, Access, IsStatic, IsLegacy) and possibly
// IsIndexed filled in.
type methodFacts struct {
	Name          string
	Comment       string
	HasProperty   bool
	ValueType     ir.Type
	Count         int
	ClassName     string
	Access        ir.Access
	IsStatic      bool
	IsLegacy      bool
	IsRepeat      bool
	IsHinted      bool
	IsMultiValue  bool
	IsIndexed     bool
	IsEnumerated  bool
	IsBoolean     bool
}

// extractMethodFacts converts a parsed method into methodFacts. The second
// return value is false when the signature does not fit any recognized
// property shape — the method is then left out of property synthesis
// entirely, per spec.md's "unclassifiable method" error kind.
func extractMethodFacts(fn *ir.FunctionInfo) (methodFacts, bool) {
	facts := methodFacts{
		Name:     fn.Name,
		Comment:  fn.Comment,
		Access:   fn.Access,
		IsStatic: fn.IsStatic,
		IsLegacy: fn.IsLegacy,
	}

	if fn.Name == "" || fn.ArrayFailure || fn.IsOperator {
		return facts, false
	}

	indexed := detectIndexed(fn)
	facts.IsIndexed = indexed

	returnIsVoid := fn.Return.Type.Base == ir.Void && !fn.Return.Type.IsIndirect()

	// Getter by return: non-void return, zero args or one index.
	if !returnIsVoid && len(fn.Arguments) == boolToInt(indexed) {
		if isGetMethod(fn.Name) {
			facts.HasProperty = true
			facts.ValueType = fn.Return.Type
			if fn.Return.HasHint {
				facts.Count = fn.Return.Count
			}
			facts.IsHinted = fn.Return.HasHint
			facts.ClassName = fn.Return.ClassName
			return facts, true
		}
	}

	// Setter by argument / getter or adder by out-parameter:
	// void return, one value arg or one index + value arg.
	if returnIsVoid && len(fn.Arguments) == 1+boolToInt(indexed) {
		valueArg := fn.Arguments[boolToInt(indexed)]

		switch {
		case isSetMethod(fn.Name):
			facts.HasProperty = true
			facts.ValueType = valueArg.Type
			facts.Count = valueArg.Count
			facts.ClassName = valueArg.ClassName
			return facts, true

		case isGetMethod(fn.Name) && valueArg.Count > 0 &&
			valueArg.Type.IsIndirect() && !valueArg.Type.IsConst():
			facts.HasProperty = true
			facts.ValueType = valueArg.Type
			facts.Count = valueArg.Count
			facts.ClassName = valueArg.ClassName
			return facts, true

		case (isAddMethod(fn.Name) || isRemoveMethod(fn.Name)) &&
			valueArg.Type.Base == ir.VTKObject && valueArg.Type.Indirection == ir.Pointer:
			facts.HasProperty = true
			facts.ValueType = valueArg.Type
			facts.Count = valueArg.Count
			facts.ClassName = valueArg.ClassName
			return facts, true
		}
	}

	// Multi-value setter/getter/adder: several arguments of the same type.
	if len(fn.Arguments) > 1 && !indexed {
		if ok, shared := allSameType(fn.Arguments); ok {
			switch {
			case isSetMethod(fn.Name) && !shared.IsIndirect() && returnIsVoid:
				facts.HasProperty = true
				facts.ValueType = shared
				facts.Count = len(fn.Arguments)
				facts.IsMultiValue = true
				return facts, true

			case isGetMethod(fn.Name) && shared.Indirection == ir.Ref && !shared.IsConst() && returnIsVoid:
				facts.HasProperty = true
				facts.ValueType = shared
				facts.Count = len(fn.Arguments)
				facts.IsMultiValue = true
				return facts, true

			case isAddMethod(fn.Name) && !shared.IsIndirect() &&
				(returnIsVoid || fn.Return.Type.Base == ir.Int || fn.Return.Type.Base == ir.IDType):
				facts.HasProperty = true
				facts.ValueType = shared
				facts.Count = len(fn.Arguments)
				facts.IsMultiValue = true
				return facts, true
			}
		}
	}

	// Parameterless property actions: void return, no arguments.
	if returnIsVoid && len(fn.Arguments) == 0 {
		switch {
		case isBooleanMethod(fn.Name):
			facts.HasProperty = true
			facts.IsBoolean = true
			return facts, true

		case isEnumeratedMethod(fn.Name):
			facts.HasProperty = true
			facts.IsEnumerated = true
			return facts, true

		case isRemoveAllMethod(fn.Name):
			facts.HasProperty = true
			return facts, true
		}
	}

	return facts, false
}

// detectIndexed reports whether fn's first argument acts as a collection
// index, per spec.md's indexing rules: the first argument must be a
// non-indirect int/id-type, and either the method is a two-argument void
// setter shape (excluding SetNumberOf, which is never indexed) or a
// one-argument non-void getter shape.
func detectIndexed(fn *ir.FunctionInfo) bool {
	if len(fn.Arguments) == 0 {
		return false
	}
	first := fn.Arguments[0].Type
	if first.IsIndirect() || (first.Base != ir.Int && first.Base != ir.IDType) {
		return false
	}

	returnIsVoid := fn.Return.Type.Base == ir.Void && !fn.Return.Type.IsIndirect()

	if returnIsVoid && len(fn.Arguments) == 2 {
		if isSetNumberOfMethod(fn.Name) {
			return false
		}
		ok, _ := allSameType(fn.Arguments)
		return !ok
	}

	if !returnIsVoid && len(fn.Arguments) == 1 {
		return true
	}

	return false
}

// allSameType reports whether every argument shares the same normalized
// type, returning that shared type when true.
func allSameType(args []ir.ValueInfo) (bool, ir.Type) {
	if len(args) == 0 {
		return false, ir.Type{}
	}
	want := args[0].Type
	for _, a := range args[1:] {
		if a.Type != want {
			return false, ir.Type{}
		}
	}
	return true, want
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
