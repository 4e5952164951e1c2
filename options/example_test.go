package options_test

import (
	"fmt"

	"github.com/mikenye/sbuffer"
	"github.com/mikenye/sbuffer/options"
)

func ExampleWithEpsilon() {
	buf, _ := sbuffer.Init[string](16, 4, 32, options.WithEpsilon(1e-4))

	_ = buf.Push(0, 16, 1.0, 1.0, "A")

	fmt.Println(buf.Print())

	// Output:
	// AAAAAAAAAAAAAAAA
}
