package properties

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSetMethod(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"SetRadius", true},
		{"Setup", false},
		{"SetX", true},
		{"Set1", true},
		{"Set", false},
		{"GetRadius", false},
		{"", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, isSetMethod(c.name), c.name)
	}
}

func TestIsSetNthMethod(t *testing.T) {
	require.True(t, isSetNthMethod("SetNthPoint"))
	require.False(t, isSetNthMethod("SetPoint"))
	require.False(t, isSetNthMethod("GetNthPoint"))
}

func TestIsRemoveAllMethod(t *testing.T) {
	require.True(t, isRemoveAllMethod("RemoveAllInputs"))
	require.False(t, isRemoveAllMethod("RemoveAllInput")) // no plural suffix
	require.False(t, isRemoveAllMethod("RemoveInput"))
}

func TestIsSetNumberOfMethod(t *testing.T) {
	require.True(t, isSetNumberOfMethod("SetNumberOfPoints"))
	require.False(t, isSetNumberOfMethod("SetNumberOfPoint")) // no plural suffix
	require.False(t, isSetNumberOfMethod("SetPoints"))
}

func TestIsBooleanMethod(t *testing.T) {
	require.True(t, isBooleanMethod("ColorOn"))
	require.True(t, isBooleanMethod("ColorOff"))
	require.False(t, isBooleanMethod("SetColor"))
}

func TestIsEnumeratedMethod(t *testing.T) {
	require.True(t, isEnumeratedMethod("SetModeToA"))
	require.True(t, isEnumeratedMethod("SetModeTo2"))
	require.False(t, isEnumeratedMethod("SetModeTolerance")) // lowercase after "To"
	require.False(t, isEnumeratedMethod("GetModeToA"))       // not a setter
	require.False(t, isEnumeratedMethod("SetMode"))
}

func TestIsAsStringMethod(t *testing.T) {
	require.True(t, isAsStringMethod("GetModeAsString"))
	require.False(t, isAsStringMethod("SetModeAsString"))
	require.False(t, isAsStringMethod("GetMode"))
}

func TestNameWithoutPrefix(t *testing.T) {
	require.Equal(t, "Radius", nameWithoutPrefix("SetRadius"))
	require.Equal(t, "Radius", nameWithoutPrefix("GetRadius"))
	require.Equal(t, "Input", nameWithoutPrefix("AddInput"))
	require.Equal(t, "Input", nameWithoutPrefix("RemoveInput"))
	require.Equal(t, "Inputs", nameWithoutPrefix("RemoveAllInputs"))
	require.Equal(t, "Point", nameWithoutPrefix("SetNthPoint"))
	require.Equal(t, "Point", nameWithoutPrefix("GetNthPoint"))
}
