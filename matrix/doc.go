// Package matrix provides the dense cost-matrix primitive of the routing core.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     configurable numeric policy (NaN/Inf rejection, +Inf as "no edge",
//     non-negative entries).
//   - NewInfDense for square cost matrices initialised to "no edge".
//   - Validators (ValidateSquare, ValidateSquareOf, ValidateSameShape).
//   - PrepareDistances and an in-place, deterministic FloydWarshall.
//
// Errors are package sentinels (errors.go); match them with errors.Is.
package matrix
