package matrix_test

import (
	"fmt"

	"github.com/sunshi1111/Application-de-livraison-express/matrix"
)

// ExampleFloydWarshall closes a three-node cost matrix into shortest distances.
func ExampleFloydWarshall() {
	m, _ := matrix.NewInfDense(3)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 2, 3)
	_ = m.Set(0, 2, 10)

	_ = matrix.PrepareDistances(m)
	_ = matrix.FloydWarshall(m)

	d, _ := m.At(0, 2)
	fmt.Println(d)
	// Output: 5
}
