// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/matrix"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultAlgorithm, o.Algorithm())
	require.Equal(t, "recursive", o.Algorithm().String())
}

// TestOptions_LastWriterWins checks setter order and nil skipping.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithFloydWarshall())
	require.Equal(t, matrix.AlgorithmFloydWarshall, o.Algorithm())

	o = matrix.NewMatrixOptions(matrix.WithFloydWarshall(), nil, matrix.WithRecursive())
	require.Equal(t, matrix.AlgorithmRecursive, o.Algorithm())

	require.Equal(t, "floyd-warshall", matrix.AlgorithmFloydWarshall.String())
	require.Equal(t, "unknown", matrix.Algorithm(9).String())
}
