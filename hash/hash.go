package hash

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash"
)

// Values will convert all objects to a string and return a hash of the concatenated values.
// Uses xxhash to calculate a fast hash value that is not cryptographically secure but is OK since
// we use hashing for generating consistent key values or equality checks.
func Values(objects ...interface{}) string {
	h := xxhash.New()
	for _, o := range objects {
		switch s := o.(type) {
		case string:
			io.WriteString(h, s)
		case []byte:
			h.Write(s)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			fmt.Fprintf(h, "%d", s)
		case float64:
			// truncate without decimals if a float like 123.00
			if s == float64(int64(s)) {
				fmt.Fprintf(h, "%d", int64(s))
			} else {
				fmt.Fprintf(h, "%f", s)
			}
		case *string:
			if s != nil {
				io.WriteString(h, *s)
			}
		case fmt.Stringer:
			io.WriteString(h, s.String())
		case nil:
		default:
			fmt.Fprintf(h, "%v", s)
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
