package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrapvtk/classprops/ir"
)

func TestClassRejectsEmptyName(t *testing.T) {
	_, err := Class("", Func("DoThing"))
	require.Error(t, err)
}

func TestClassRejectsUnnamedMethod(t *testing.T) {
	_, err := Class("vtkThing", ir.FunctionInfo{})
	require.Error(t, err)
}

func TestClassRejectsNonIndirectArrayCount(t *testing.T) {
	_, err := Class("vtkThing", Taking(Func("SetValue"), Int))
	require.NoError(t, err)

	bad := Func("SetPoint")
	bad.Arguments = append(bad.Arguments, ir.ValueInfo{Type: Double, Count: 3})
	_, err = Class("vtkThing", bad)
	require.Error(t, err)
}

func TestScenariosBuildWithoutPanicking(t *testing.T) {
	require.NotPanics(t, func() { RadiusScenario() })
	require.NotPanics(t, func() { OverloadScenario() })
	require.NotPanics(t, func() { ColorScenario() })
	require.NotPanics(t, func() { ModeScenario() })
	require.NotPanics(t, func() { PointScenario() })
	require.NotPanics(t, func() { InputScenario() })
}
