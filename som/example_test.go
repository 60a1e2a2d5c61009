package som_test

import (
	"fmt"

	"github.com/katalvlaran/lvsom/som"
	"gonum.org/v1/gonum/mat"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMap_Fit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 1×2 map learns two well separated points. After training each point
//	is mapped to its own cell, and Reconstruct returns the prototype that
//	stands in for it.
//
// Complexity: O(epochs · n · R·C·D)
func ExampleMap_Fit() {
	X := mat.NewDense(2, 2, []float64{
		-1, -1,
		1, 1,
	})
	m, err := som.New(1, 2, som.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = m.Fit(X, 50, false); err != nil {
		fmt.Println("error:", err)
		return
	}
	cells, _ := m.Predict(X)
	fmt.Println("distinct cells:", cells[0] != cells[1])

	approx, _ := m.Reconstruct(cells)
	r, c := approx.Dims()
	fmt.Printf("reconstruction: %d×%d\n", r, c)
	// Output:
	// distinct cells: true
	// reconstruction: 2×2
}

// ExampleMap_Predict shows the error surfaced before training.
func ExampleMap_Predict() {
	m, _ := som.New(3, 3)
	_, err := m.Predict(mat.NewDense(1, 2, []float64{0, 0}))
	fmt.Println(err)
	// Output:
	// Map.Predict: som: map is not trained
}
