package vector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmat/vector"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestWraparoundIndexing(t *testing.T) {
	v := vector.Of(1, 2, 3)
	assert.Equal(t, float32(1), v.At(3))
	assert.Equal(t, float32(3), v.At(-1))
	assert.Equal(t, float32(2), v.At(7))

	v.Set(4, 20)
	assert.Equal(t, float32(20), v[1])

	var empty vector.Vector
	assert.Equal(t, float32(0), empty.At(5))
	empty.Set(0, 1) // must not panic
	assert.Zero(t, empty.Len())
}

func TestResize(t *testing.T) {
	v := vector.Of(1, 2)
	v.Resize(4, 9)
	require.Equal(t, vector.Of(1, 2, 9, 9), v)

	v.Resize(1, 0)
	require.Equal(t, vector.Of(1), v)

	// Growing after a truncation must not bring back the old tail.
	v.Resize(3, 0)
	require.Equal(t, vector.Of(1, 0, 0), v)

	v.Resize(-2, 0)
	require.Zero(t, v.Len())
}

func TestAddSubMismatchedLengths(t *testing.T) {
	a := vector.Of(1, 2, 3)
	b := vector.Of(10, 20)

	assert.Equal(t, vector.Of(11, 22, 3), a.Add(b))
	assert.Equal(t, vector.Of(11, 22, 3), b.Add(a))
	assert.Equal(t, vector.Of(-9, -18, 3), a.Sub(b))
	assert.Equal(t, vector.Of(9, 18, -3), b.Sub(a))
	assert.Equal(t, vector.Of(-1, -2), vector.Vector(nil).Sub(vector.Of(1, 2)))

	// operands untouched
	assert.Equal(t, vector.Of(1, 2, 3), a)
	assert.Equal(t, vector.Of(10, 20), b)
}

func TestScaleDotAxpy(t *testing.T) {
	a := vector.Of(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := vector.Filled(9, 2)

	assert.Equal(t, float32(90), a.Dot(b))
	assert.Equal(t, float32(14), a.Dot(vector.Of(1, 2, 3)), "dot uses the common prefix")
	assert.Equal(t, float32(45), a.Sum())

	s := a.Scale(0.5)
	if diff := cmp.Diff([]float32{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5}, []float32(s), approx); diff != "" {
		t.Fatalf("Scale mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, vector.Of(-1, -2), vector.Of(1, 2).Neg())

	c := vector.Of(1, 1, 1)
	c.AddScaled(10, vector.Of(1, 2, 3))
	assert.Equal(t, vector.Of(11, 21, 31), c)

	c.ScaleInPlace(0)
	assert.Equal(t, vector.Of(0, 0, 0), c)
}

func TestSwapNearEqualString(t *testing.T) {
	v := vector.Of(1, 2, 3)
	v.Swap(0, -1)
	assert.Equal(t, vector.Of(3, 2, 1), v)

	assert.True(t, v.NearEqual(vector.Of(3, 2.0000001, 1), 1e-6))
	assert.False(t, v.NearEqual(vector.Of(3, 2), 1))

	assert.Equal(t, "[3, 2, 1]", v.String())
	assert.Equal(t, "[1.5, -2]", vector.Of(1.5, -2).String())
	assert.Equal(t, "[]", vector.New(0).String())
}
