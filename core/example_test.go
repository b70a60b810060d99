package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-dataset/core"
)

func ExampleFill() {
	fmt.Println(core.Fill(2, 5))

	// Output:
	// [2 2 2 2 2]
}
