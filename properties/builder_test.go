package properties

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrapvtk/classprops/internal/fixtures"
	"github.com/wrapvtk/classprops/ir"
)

func propertyNames(props *ClassProperties) []string {
	names := make([]string, len(props.Properties))
	for i, p := range props.Properties {
		names[i] = p.Name
	}
	return names
}

func TestSynthesizeRadius(t *testing.T) {
	class := fixtures.RadiusScenario()
	props := Synthesize(&class)

	require.Equal(t, []string{"Radius"}, propertyNames(props))
	radius := props.Properties[0]
	require.Equal(t, BasicSet, radius.PublicMethods&BasicSet)
	require.Equal(t, BasicGet, radius.PublicMethods&BasicGet)

	for i := range class.Functions {
		require.GreaterOrEqual(t, props.MethodProperty[i], 0, class.Functions[i].Name)
	}
}

func TestSynthesizeOverloadRepeat(t *testing.T) {
	class := fixtures.OverloadScenario()
	props := Synthesize(&class)

	require.Equal(t, []string{"Radius"}, propertyNames(props))
	require.Equal(t, ir.Double, props.Properties[0].ValueType.Base)

	// indices: 0=GetRadius(double) 1=SetRadius(double) 2=GetRadius(float,legacy) 3=SetRadius(float,legacy)
	for _, legacyIdx := range []int{2, 3} {
		require.Equal(t, 0, props.MethodProperty[legacyIdx], "legacy overload %d should mirror the winner's property", legacyIdx)
	}
	require.Equal(t, props.MethodCategory[0], props.MethodCategory[2])
	require.Equal(t, props.MethodCategory[1], props.MethodCategory[3])
}

func TestSynthesizeColor(t *testing.T) {
	class := fixtures.ColorScenario()
	props := Synthesize(&class)

	require.Equal(t, []string{"Color"}, propertyNames(props))
	color := props.Properties[0]
	require.NotZero(t, color.PublicMethods&BoolOn)
	require.NotZero(t, color.PublicMethods&BoolOff)
	require.NotZero(t, color.PublicMethods&BasicSet)
	require.NotZero(t, color.PublicMethods&BasicGet)
}

func TestSynthesizeMode(t *testing.T) {
	class := fixtures.ModeScenario()
	props := Synthesize(&class)

	require.Equal(t, []string{"Mode"}, propertyNames(props))
	mode := props.Properties[0]
	require.NotZero(t, mode.PublicMethods&EnumSet)
	require.NotZero(t, mode.PublicMethods&BasicSet)
	require.NotZero(t, mode.PublicMethods&BasicGet)
	require.NotZero(t, mode.PublicMethods&StringGet)
	require.ElementsMatch(t, []string{"A", "B"}, mode.EnumConstantNames)
}

func TestSynthesizePoint(t *testing.T) {
	class := fixtures.PointScenario()
	props := Synthesize(&class)

	// SetNumberOfPoints/GetNumberOfPoints fold into the same "Point"
	// property as SetPoint/GetPoint via the NumberOf cross-check in the
	// matcher, rather than seeding a separate "NumberOfPoints" property.
	require.Equal(t, []string{"Point"}, propertyNames(props))
	point := props.Properties[0]
	require.NotZero(t, point.PublicMethods&IndexSet)
	require.NotZero(t, point.PublicMethods&IndexGet)
	require.NotZero(t, point.PublicMethods&SetNum)
	require.NotZero(t, point.PublicMethods&GetNum)
}

func TestSynthesizeInput(t *testing.T) {
	class := fixtures.InputScenario()
	props := Synthesize(&class)

	require.Equal(t, []string{"Input"}, propertyNames(props))
	input := props.Properties[0]
	require.NotZero(t, input.PublicMethods&BasicAdd)
	require.NotZero(t, input.PublicMethods&BasicRem)
	require.NotZero(t, input.PublicMethods&RemoveAll)
	require.Equal(t, "vtkDataObject", input.ClassName)
}

// TestAtMostOneProperty checks that no method is ever attributed to more
// than one property: every MethodProperty entry is either -1 or a valid
// index into Properties, and no method index is recorded twice.
func TestAtMostOneProperty(t *testing.T) {
	for name, class := range allScenarios() {
		t.Run(name, func(t *testing.T) {
			props := Synthesize(&class)
			seen := map[int]map[int]bool{}
			for i, propIdx := range props.MethodProperty {
				if propIdx < 0 {
					continue
				}
				require.Less(t, propIdx, len(props.Properties), class.Functions[i].Name)
				if seen[propIdx] == nil {
					seen[propIdx] = map[int]bool{}
				}
				require.False(t, seen[propIdx][i])
				seen[propIdx][i] = true
			}
		})
	}
}

// TestCategoryPropertyCoherence checks that MethodCategory and
// MethodProperty agree: a method has a nonzero category if and only if it
// was assigned to a property.
func TestCategoryPropertyCoherence(t *testing.T) {
	for name, class := range allScenarios() {
		t.Run(name, func(t *testing.T) {
			props := Synthesize(&class)
			for i := range class.Functions {
				hasCategory := props.MethodCategory[i] != 0
				hasProperty := props.MethodProperty[i] >= 0
				require.Equal(t, hasCategory, hasProperty, class.Functions[i].Name)
			}
		})
	}
}

// TestIdempotentUnderPermutation checks that reversing a class's method
// order produces the same set of properties, since the synthesizer must
// read no significance into declaration order beyond tie-breaking between
// otherwise-equal repeats.
func TestIdempotentUnderPermutation(t *testing.T) {
	for name, class := range allScenarios() {
		t.Run(name, func(t *testing.T) {
			forward := Synthesize(&class)

			reversed := class
			reversed.Functions = make([]ir.FunctionInfo, len(class.Functions))
			for i, fn := range class.Functions {
				reversed.Functions[len(class.Functions)-1-i] = fn
			}
			backward := Synthesize(&reversed)

			require.ElementsMatch(t, propertyNames(forward), propertyNames(backward))
		})
	}
}

func allScenarios() map[string]ir.ClassInfo {
	return map[string]ir.ClassInfo{
		"radius":   fixtures.RadiusScenario(),
		"overload": fixtures.OverloadScenario(),
		"color":    fixtures.ColorScenario(),
		"mode":     fixtures.ModeScenario(),
		"point":    fixtures.PointScenario(),
		"input":    fixtures.InputScenario(),
	}
}
