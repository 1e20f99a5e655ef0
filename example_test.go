package calc_test

import (
	"context"
	"fmt"

	"github.com/dolthub/go-calc"
)

func Example() {
	e := calc.NewDefault()

	r, err := e.Eval(context.Background(), "(2 + 3) * 4 - 8 / 2")
	checkIfError(err)

	fmt.Println(r.Value)

	// Output: 16
}

func checkIfError(err error) {
	if err != nil {
		panic(err)
	}
}
