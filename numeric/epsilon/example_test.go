package epsilon_test

import (
	"fmt"
	"math"

	"github.com/realline/mathematics/numeric/epsilon"
)

func ExampleNearlyEqualWithin() {
	fmt.Println(epsilon.NearlyEqualWithin(1e13, 1e13+1, 1e-12))
	fmt.Println(epsilon.NearlyEqualWithin(1e11, 1e11+1, 1e-12))
	fmt.Println(epsilon.NearlyEqual(math.Inf(1), math.Inf(-1)))
	// Output:
	// true
	// false
	// false
}

func ExampleULPDiff() {
	fmt.Println(epsilon.ULPDiff(1, math.Nextafter(1, 2)))
	fmt.Println(epsilon.ULPDiff(math.NaN(), 1) == epsilon.MaxULPDiff)
	// Output:
	// 1
	// true
}
