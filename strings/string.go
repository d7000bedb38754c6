package strings

import (
	"fmt"
	"strconv"
	"time"
)

// Value returns a string value for an interface or empty string if nil.
// Whole floats are written without decimals so that a JSON decoded 123 reads as "123".
func Value(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	case *int:
		if s == nil {
			return ""
		}
		return strconv.Itoa(*s)
	case *int32:
		if s == nil {
			return ""
		}
		return strconv.FormatInt(int64(*s), 10)
	case *int64:
		if s == nil {
			return ""
		}
		return strconv.FormatInt(*s, 10)
	case []byte:
		return string(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case time.Time:
		return s.Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", v)
}
