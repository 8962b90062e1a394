package featmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/relumap/featmap"
)

// emptyMatrix reports zero rows; mat.NewDense cannot construct one, so the
// empty-input contract is exercised through a stub.
type emptyMatrix struct{}

func (emptyMatrix) Dims() (int, int)    { return 0, 3 }
func (emptyMatrix) At(_, _ int) float64 { return 0 }
func (m emptyMatrix) T() mat.Matrix     { return mat.Transpose{Matrix: m} }

func TestValidateMatrix_Nil(t *testing.T) {
	_, _, err := featmap.ValidateMatrix(nil)
	require.ErrorIs(t, err, featmap.ErrNilMatrix)
}

func TestValidateMatrix_Empty(t *testing.T) {
	_, _, err := featmap.ValidateMatrix(emptyMatrix{})
	require.ErrorIs(t, err, featmap.ErrEmptyMatrix)
}

func TestValidateMatrix_NaNInf(t *testing.T) {
	withNaN := mat.NewDense(2, 2, []float64{1, 2, math.NaN(), 4})
	_, _, err := featmap.ValidateMatrix(withNaN)
	require.ErrorIs(t, err, featmap.ErrNaNInf)

	withInf := mat.NewDense(2, 2, []float64{1, 2, 3, math.Inf(-1)})
	_, _, err = featmap.ValidateMatrix(withInf)
	require.ErrorIs(t, err, featmap.ErrNaNInf)
}

func TestValidateMatrix_ReturnsDims(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	n, d, err := featmap.ValidateMatrix(X)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 2, d)
}

func TestValidateLabels_Mismatch(t *testing.T) {
	_, err := featmap.ValidateLabels([]int{0, 1}, 3)
	require.ErrorIs(t, err, featmap.ErrLabelMismatch)
}

func TestValidateLabels_Negative(t *testing.T) {
	_, err := featmap.ValidateLabels([]int{0, -1, 1}, 3)
	require.ErrorIs(t, err, featmap.ErrNegativeLabel)
}

func TestValidateLabels_ClassCount(t *testing.T) {
	classes, err := featmap.ValidateLabels([]int{0, 2, 1, 2}, 4)
	require.NoError(t, err)
	require.Equal(t, 3, classes)
}

// TestAppendIntercept verifies the trailing constant-one column and that
// the input matrix is copied, not aliased.
func TestAppendIntercept(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	out := featmap.AppendIntercept(X)
	n, d := out.Dims()
	require.Equal(t, 2, n)
	require.Equal(t, 3, d)
	require.Equal(t, 2.0, out.At(0, 1))
	require.Equal(t, 1.0, out.At(0, 2))
	require.Equal(t, 1.0, out.At(1, 2))

	// Mutating the output must not touch X.
	out.Set(0, 0, 99)
	require.Equal(t, 1.0, X.At(0, 0))
}
