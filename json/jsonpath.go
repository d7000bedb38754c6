package json

import (
	"strings"

	"github.com/oliveagle/jsonpath"
)

// IsPath returns true if key is a json path expression such as $.a.b
func IsPath(key string) bool {
	return strings.HasPrefix(key, "$")
}

func isJSONPathNotFound(err error) bool {
	return strings.Contains(err.Error(), "not found in object") ||
		strings.Contains(err.Error(), "get attribute from null object") ||
		strings.Contains(err.Error(), "index out of range")
}

// Lookup resolves a json path expression against o. found is false when the path does not
// exist or resolves to null.
func Lookup(o interface{}, path string) (val interface{}, found bool, err error) {
	val, err = jsonpath.JsonPathLookup(o, path)
	if err != nil {
		if isJSONPathNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, val != nil, nil
}
