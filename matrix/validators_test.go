package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunshi1111/Application-de-livraison-express/matrix"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not nil ok", matrix.ValidateNotNil(sq), nil},
		{"nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"square ok", matrix.ValidateSquare(sq), nil},
		{"square rect", matrix.ValidateSquare(rect), matrix.ErrNonSquare},
		{"square of ok", matrix.ValidateSquareOf(sq, 3), nil},
		{"square of wrong order", matrix.ValidateSquareOf(sq, 4), matrix.ErrDimensionMismatch},
		{"square of rect", matrix.ValidateSquareOf(rect, 2), matrix.ErrNonSquare},
		{"same shape ok", matrix.ValidateSameShape(sq, sq.Clone()), nil},
		{"same shape mismatch", matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"same shape nil", matrix.ValidateSameShape(sq, nil), matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		if tc.want == nil {
			require.NoError(t, tc.err, tc.name)
			continue
		}
		require.ErrorIs(t, tc.err, tc.want, tc.name)
	}
}
