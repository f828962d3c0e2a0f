package sfutils_test

import (
	"fmt"

	sfutils "github.com/CxRes/sf-utils"
	"github.com/dunglas/httpsfv"
)

func ExampleValueString() {
	fmt.Println(sfutils.ValueString(httpsfv.Token("text/html")))
	fmt.Println(sfutils.ValueString(int64(42)))
	fmt.Println(sfutils.ValueString(0.5))
	fmt.Println(sfutils.ValueString([]byte("hi")))
	// Output:
	// text/html
	// 42
	// 0.5
	// aGk=
}

func ExampleValueEqual() {
	// Same type compares natively.
	fmt.Println(sfutils.ValueEqual(int64(2), int64(2)))

	// Mixed types compare by rendering.
	fmt.Println(sfutils.ValueEqual(int64(2), "2"))
	fmt.Println(sfutils.ValueEqual(httpsfv.Token("utf-8"), "utf-8"))
	fmt.Println(sfutils.ValueEqual(float64(2), "2.0"))
	// Output:
	// true
	// true
	// true
	// false
}
