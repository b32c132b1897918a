package fixtures

import "github.com/wrapvtk/classprops/ir"

// RadiusScenario is the baseline SetRadius/GetRadius pair: a single scalar
// property with no complications.
func RadiusScenario() ir.ClassInfo {
	return MustClass("vtkSphere",
		Returning(Func("GetRadius"), Double),
		Taking(Func("SetRadius"), Double),
	)
}

// OverloadScenario adds a legacy float-typed SetRadius/GetRadius overload
// pair alongside the double-typed current one, so the double overload must
// win and the float overload must be marked a repeat.
func OverloadScenario() ir.ClassInfo {
	return MustClass("vtkSphere",
		Returning(Func("GetRadius"), Double),
		Taking(Func("SetRadius"), Double),
		Legacy(Returning(Func("GetRadius"), Float)),
		Legacy(Taking(Func("SetRadius"), Float)),
	)
}

// ColorScenario exercises BoolOn/BoolOff folding into a SetColor/GetColor
// scalar pair. The property's value type must be int (or unsigned int/
// unsigned char/bool) for the boolean methods to promote into it — hence
// Int here, not Double.
func ColorScenario() ir.ClassInfo {
	return MustClass("vtkActor",
		Func("ColorOn"),
		Func("ColorOff"),
		Taking(Func("SetColor"), Int),
		Returning(Func("GetColor"), Int),
	)
}

// ModeScenario exercises the enumerated-property shape: SetMode seeds the
// property, and SetModeToA/ToB join it as EnumSet members alongside GetMode
// and the string accessor GetModeAsString.
func ModeScenario() ir.ClassInfo {
	return MustClass("vtkMapper",
		Func("SetModeToA"),
		Func("SetModeToB"),
		Taking(Func("SetMode"), Int),
		Returning(Func("GetMode"), Int),
		Returning(Func("GetModeAsString"), ir.Type{Base: ir.Char, Indirection: ir.Pointer}),
	)
}

// PointScenario exercises the indexed/array property shape: SetPoint takes
// an index plus the coordinate array, GetPoint takes an index and returns
// the array, and SetNumberOfPoints/GetNumberOfPoints set and report the
// collection size.
func PointScenario() ir.ClassInfo {
	return MustClass("vtkPoints",
		TakingArray(Taking(Func("SetPoint"), Int), Double, 3),
		ReturningHinted(Taking(Func("GetPoint"), Int), Double, 3),
		Taking(Func("SetNumberOfPoints"), Int),
		Returning(Func("GetNumberOfPoints"), Int),
	)
}

// InputScenario exercises the object Add/Remove/RemoveAll shape.
func InputScenario() ir.ClassInfo {
	return MustClass("vtkAlgorithm",
		TakingObject(Func("AddInput"), "vtkDataObject"),
		TakingObject(Func("RemoveInput"), "vtkDataObject"),
		Func("RemoveAllInputs"),
	)
}
