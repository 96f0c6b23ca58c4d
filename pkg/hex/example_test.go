package hex_test

import (
	"fmt"

	"github.com/matzehuels/hextile/pkg/hex"
)

func ExampleAxial_DistanceTo() {
	a := hex.New(-1, 3)
	b := hex.New(2, -2)
	fmt.Println(a.Length(), a.DistanceTo(b))
	// Output: 3 5
}

func ExampleRound() {
	fmt.Println(hex.Round(5.4, 3.2))
	fmt.Println(hex.Round(2.3, -13.6))
	// Output:
	// (6, 3)
	// (2, -13)
}

func ExampleAxial_Circle() {
	ring := hex.Axial{}.Circle(1)
	for a := range ring.All() {
		fmt.Print(a, " ")
	}
	fmt.Println()
	// Output: (0, 1) (-1, 1) (-1, 0) (0, -1) (1, -1) (1, 0)
}

func ExampleSpacing() {
	s := hex.FlatSpacing(7, 10)
	fmt.Println(s.PixelCenter(hex.New(1, 1)))
	fmt.Println(s.NearestAxial(hex.Pt(-13, 1)))
	// Output:
	// (7, 15)
	// (-2, 1)
}
