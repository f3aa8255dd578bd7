package erased_test

import (
	"fmt"

	"github.com/get-serde/go-serde/erased"
	"github.com/get-serde/go-serde/jsoncodec"
)

// Values of unrelated shapes share the erased.Value type, so they can be
// collected and serialized through a backend chosen at runtime.
func Example() {
	values := []erased.Value{
		erased.String("hello"),
		erased.Seq(erased.Int(1), erased.Int(2)),
		erased.Struct("Point",
			erased.Field{Name: "x", Value: erased.Int(3)},
			erased.Field{Name: "y", Value: erased.Int(4)},
		),
	}

	for _, value := range values {
		ser := jsoncodec.NewSerializer()
		if err := erased.Serialize(value, ser); err != nil {
			panic(err)
		}

		fmt.Println(string(ser.Bytes()))
	}

	// Output:
	// "hello"
	// [1,2]
	// {"x":3,"y":4}
}
