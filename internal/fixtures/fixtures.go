// Package fixtures builds small ir.ClassInfo values for exercising the
// property synthesizer, the way a real parser would hand them over. It has
// no dependency on the properties package so that package's tests can
// use it.
package fixtures

import (
	"fmt"

	"github.com/wrapvtk/classprops/ir"
)

// Func starts a method declaration for name. Use the chained helpers below
// (Returning, Taking, Static, ...) to shape its arguments, return value and
// flags before handing it to a fixture class.
func Func(name string) ir.FunctionInfo {
	return ir.FunctionInfo{Name: name}
}

// Returning sets fn's return type as a plain value with no array count;
// ReturningHinted covers an array return with a count hint.
func Returning(fn ir.FunctionInfo, t ir.Type) ir.FunctionInfo {
	fn.Return = ir.ValueInfo{Type: t}
	return fn
}

// ReturningHinted sets fn's return type to a pointer to t along with an
// explicit count hint, mirroring a parser-recognized CountHint comment on
// the original method: an array value is always reached through a pointer.
func ReturningHinted(fn ir.FunctionInfo, t ir.Type, count int) ir.FunctionInfo {
	t.Indirection = ir.Pointer
	fn.Return = ir.ValueInfo{Type: t, Count: count, HasHint: true}
	return fn
}

// ReturningObject sets fn's return type to a pointer to a toolkit object of
// the given class name.
func ReturningObject(fn ir.FunctionInfo, className string) ir.FunctionInfo {
	fn.Return = ir.ValueInfo{
		Type:      ir.Type{Base: ir.VTKObject, Indirection: ir.Pointer},
		ClassName: className,
	}
	return fn
}

// Taking appends a plain value argument to fn.
func Taking(fn ir.FunctionInfo, t ir.Type) ir.FunctionInfo {
	fn.Arguments = append(fn.Arguments, ir.ValueInfo{Type: t})
	return fn
}

// TakingArray appends a fixed-count array argument to fn, reached through a
// pointer, the way a C++ array argument decays.
func TakingArray(fn ir.FunctionInfo, t ir.Type, count int) ir.FunctionInfo {
	t.Indirection = ir.Pointer
	fn.Arguments = append(fn.Arguments, ir.ValueInfo{Type: t, Count: count})
	return fn
}

// TakingObject appends a pointer-to-toolkit-object argument to fn.
func TakingObject(fn ir.FunctionInfo, className string) ir.FunctionInfo {
	fn.Arguments = append(fn.Arguments, ir.ValueInfo{
		Type:      ir.Type{Base: ir.VTKObject, Indirection: ir.Pointer},
		ClassName: className,
	})
	return fn
}

// Static marks fn as a static method.
func Static(fn ir.FunctionInfo) ir.FunctionInfo {
	fn.IsStatic = true
	return fn
}

// Legacy marks fn as a legacy overload.
func Legacy(fn ir.FunctionInfo) ir.FunctionInfo {
	fn.IsLegacy = true
	return fn
}

// Protected lowers fn's access to protected.
func Protected(fn ir.FunctionInfo) ir.FunctionInfo {
	fn.Access = ir.Protected
	return fn
}

// Documented attaches a doc comment to fn.
func Documented(fn ir.FunctionInfo, comment string) ir.FunctionInfo {
	fn.Comment = comment
	return fn
}

// Class assembles a named class from its declared methods, rejecting
// obviously malformed fixture data: an empty class name, an unnamed method,
// or an argument/return value whose Count is nonzero while its type carries
// no indirection (an array value must be reached through a pointer).
func Class(name string, methods ...ir.FunctionInfo) (ir.ClassInfo, error) {
	if name == "" {
		return ir.ClassInfo{}, fmt.Errorf("fixtures: class name must not be empty")
	}
	for _, fn := range methods {
		if fn.Name == "" {
			return ir.ClassInfo{}, fmt.Errorf("fixtures: class %s has an unnamed method", name)
		}
		if err := validateValue(fn.Return); err != nil {
			return ir.ClassInfo{}, fmt.Errorf("fixtures: %s.%s return value: %w", name, fn.Name, err)
		}
		for i, arg := range fn.Arguments {
			if err := validateValue(arg); err != nil {
				return ir.ClassInfo{}, fmt.Errorf("fixtures: %s.%s argument %d: %w", name, fn.Name, i, err)
			}
		}
	}
	return ir.ClassInfo{Name: name, Functions: methods}, nil
}

func validateValue(v ir.ValueInfo) error {
	if v.Count > 0 && !v.Type.IsIndirect() {
		return fmt.Errorf("array count %d set on a non-indirect type", v.Count)
	}
	return nil
}

// MustClass is Class, panicking on error. The scenario builders below use
// it because their fixture data is fixed at compile time — a validation
// failure there is a bug in this package, not in a caller's input.
func MustClass(name string, methods ...ir.FunctionInfo) ir.ClassInfo {
	class, err := Class(name, methods...)
	if err != nil {
		panic(err)
	}
	return class
}

// Double, Int, and Float are the value types fixtures reach for most often.
var (
	Double = ir.Type{Base: ir.Double}
	Float  = ir.Type{Base: ir.Float}
	Int    = ir.Type{Base: ir.Int}
	Bool   = ir.Type{Base: ir.Bool}
)
