package randomwalk_test

import (
	"fmt"

	"github.com/katalvlaran/lvkernel/internal/fixtures"
	"github.com/katalvlaran/lvkernel/randomwalk"
)

// ExampleUnlabeled scores the two fixture molecules with walks up to length 4.
func ExampleUnlabeled() {
	plain, _ := randomwalk.Unlabeled(fixtures.G1(), fixtures.G2(), 4)
	labeled, _ := randomwalk.Labeled(fixtures.G1(), fixtures.G2(), 4)
	fmt.Printf("%.4f %.4f\n", plain, labeled)
	// Output:
	// 23.5928 6.6914
}
