package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmat/matrix"
	"github.com/katalvlaran/sqmat/vector"
)

func TestNew_ColumnMajorByDefault(t *testing.T) {
	m := matrix.New([]vector.Vector{vector.Of(1, 3), vector.Of(2, 4)})
	require.Equal(t, 2, m.Dimens())
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, m.Rows())
	assert.Equal(t, vector.Of(1, 3), m.Column(0))
	assert.Equal(t, vector.Of(1, 2), m.Row(0))
}

func TestNew_RowMajorTransposes(t *testing.T) {
	m := matrix.New([]vector.Vector{vector.Of(1, 2), vector.Of(3, 4)}, matrix.WithRowMajor())
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, m.Rows())

	back := matrix.New(m.Columns(), matrix.WithRowMajor(), matrix.WithColumnMajor())
	assert.True(t, back.Equal(m, 0), "last option wins")
}

func TestNew_RaggedInputIsPadded(t *testing.T) {
	t.Run("longest column wins", func(t *testing.T) {
		m := matrix.New([]vector.Vector{vector.Of(1), vector.Of(2, 3, 4)})
		require.Equal(t, 3, m.Dimens())
		assert.Equal(t, [][]float32{{1, 2, 0}, {0, 3, 0}, {0, 4, 0}}, m.Rows())
	})
	t.Run("more rows than columns", func(t *testing.T) {
		m := Rows([]float32{1}, []float32{2}, []float32{3})
		require.Equal(t, 3, m.Dimens())
		assert.Equal(t, [][]float32{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}}, m.Rows())
	})
	t.Run("custom fill", func(t *testing.T) {
		m := matrix.New([]vector.Vector{vector.Of(1), vector.Of(2, 3)}, matrix.WithFill(9))
		assert.Equal(t, [][]float32{{1, 2}, {9, 3}}, m.Rows())
	})
	t.Run("input not aliased", func(t *testing.T) {
		col := vector.Of(1, 2)
		m := matrix.New([]vector.Vector{col, vector.Of(3, 4)})
		col[0] = 100
		assert.Equal(t, float32(1), m.At(0, 0))
	})
}

func TestIdentityAndNull(t *testing.T) {
	id := matrix.NewIdentity(3, 2)
	assert.Equal(t, [][]float32{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}, id.Rows())
	assert.Equal(t, vector.Of(2, 2, 2), id.Diagonal())

	assert.Equal(t, 0, matrix.Null().Dimens())
	assert.True(t, matrix.Null().IsNull())
	assert.True(t, matrix.NewIdentity(-1, 1).IsNull())

	var nilM *matrix.Square
	assert.Equal(t, 0, nilM.Dimens())
	assert.True(t, nilM.Clone().IsNull())
}

func TestAtSetWraparound(t *testing.T) {
	m := Rows([]float32{1, 2}, []float32{3, 4})
	assert.Equal(t, float32(4), m.At(3, -1), "row 3 -> 1, col -1 -> 1")
	assert.Equal(t, float32(2), m.At(2, 1))

	m.Set(-2, 5, 7) // (0, 1)
	assert.Equal(t, float32(7), m.At(0, 1))
	assert.Equal(t, vector.Of(3, 4), m.Row(-1))
	assert.Equal(t, vector.Of(7, 4), m.Column(3))

	null := matrix.Null()
	assert.Equal(t, float32(0), null.At(1, 1))
	null.Set(0, 0, 1) // no-op, no panic
	assert.Zero(t, null.Column(0).Len())
	assert.Zero(t, null.Row(0).Len())
}

func TestCloneIsDeep(t *testing.T) {
	m := Rows([]float32{1, 2}, []float32{3, 4})
	cp := m.Clone()
	cp.Set(0, 0, 42)
	assert.Equal(t, float32(1), m.At(0, 0))
	assert.Equal(t, float32(42), cp.At(0, 0))
}

func TestTranspose(t *testing.T) {
	m := Rows([]float32{1, 2, 3}, []float32{4, 5, 6}, []float32{7, 8, 9})
	tr := m.Transposed()
	assert.Equal(t, [][]float32{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, tr.Rows())
	assert.Equal(t, float32(2), m.At(0, 1), "Transposed must not mutate")

	same := m.Transpose()
	assert.Same(t, m, same)
	assert.True(t, m.Equal(tr, 0))
	assert.True(t, m.Transpose().Transpose().Equal(tr, 0))
}

func TestResize(t *testing.T) {
	t.Run("grow with trace and off-trace fill", func(t *testing.T) {
		m := matrix.NewIdentity(2, 1).ResizeFill(3, 5, 0)
		require.Equal(t, 3, m.Dimens())
		assert.Equal(t, float32(5), m.At(2, 2))
		assert.Equal(t, [][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 5}}, m.Rows())
	})
	t.Run("grow off-trace fill reaches every new cell", func(t *testing.T) {
		m := Rows([]float32{1, 2}, []float32{3, 4}).ResizeFill(3, 9, 7)
		assert.Equal(t, [][]float32{{1, 2, 7}, {3, 4, 7}, {7, 7, 9}}, m.Rows())
	})
	t.Run("default resize embeds into identity", func(t *testing.T) {
		m := Rows([]float32{2}).Resize(3)
		assert.Equal(t, [][]float32{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m.Rows())
	})
	t.Run("shrink keeps the top-left block", func(t *testing.T) {
		m := Rows([]float32{1, 2, 3}, []float32{4, 5, 6}, []float32{7, 8, 9}).Resize(2)
		assert.Equal(t, [][]float32{{1, 2}, {4, 5}}, m.Rows())

		// growing again must not resurrect truncated cells
		m.ResizeFill(3, 0, 0)
		assert.Equal(t, [][]float32{{1, 2, 0}, {4, 5, 0}, {0, 0, 0}}, m.Rows())
	})
	t.Run("to null and back", func(t *testing.T) {
		m := matrix.NewIdentity(2, 1).Resize(-3)
		assert.True(t, m.IsNull())
		m.Resize(1)
		assert.Equal(t, [][]float32{{1}}, m.Rows())
	})
}

func TestEqual(t *testing.T) {
	a := Rows([]float32{1, 2}, []float32{3, 4})
	b := Rows([]float32{1, 2.00001}, []float32{3, 4})
	assert.True(t, a.Equal(b, 1e-4))
	assert.False(t, a.Equal(b, 1e-7))
	assert.False(t, a.Equal(matrix.NewIdentity(3, 1), 1))
	assert.True(t, matrix.Null().Equal(nil, 0))
}
