package geo_test

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/tspbb/geo"
	"github.com/katalvlaran/tspbb/tsp"
)

// ExampleNewModel solves four cities on the corners of a square.
func ExampleNewModel() {
	cities := []geo.City{
		{Point: orb.Point{0, 0}},
		{Point: orb.Point{0, 0.5}},
		{Point: orb.Point{0.5, 0}},
		{Point: orb.Point{0.5, 0.5}},
	}
	m, err := geo.NewModel(cities, geo.Easy, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := tsp.Solve(context.Background(), m, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tsp.FormatTour(res.Tour), res.Cost)
	// Output:
	// 0 → 1 → 3 → 2 → 0 2000
}
