package periodic_test

import (
	"fmt"

	"github.com/katalvlaran/phaseport/periodic"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleStepIndex
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A normalized phase in [0,1) must pick one of 6 colormap entries.
//	Negative phases (angles below the branch cut) wrap around the cycle.
//
// Complexity: O(1) per call.
func ExampleStepIndex() {
	fmt.Println(periodic.StepIndex(0.0, 1, 6))
	fmt.Println(periodic.StepIndex(0.5, 1, 6))
	fmt.Println(periodic.StepIndex(-0.25, 1, 6))
	// Output:
	// 1
	// 4
	// 5
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSawtooth
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A brightness ramp over [0.75, 1.0] with 20 bands per unit interval,
//	as used by the stepped-phase portrait variant.
//
// Complexity: O(1) per call.
func ExampleSawtooth() {
	fmt.Printf("%.4f\n", periodic.Sawtooth(0, 1.0/20, 0.75, 1))
	fmt.Printf("%.4f\n", periodic.Sawtooth(0.025, 1.0/20, 0.75, 1))
	// Output:
	// 0.7500
	// 0.8750
}
