package filter

import (
	pjson "github.com/pinpt/go-filterset/json"
)

// Record is a single structured data item that filters are evaluated against
type Record map[string]interface{}

// Get returns the value for key and whether it is present. A key starting with $ is resolved
// as a json path against the record so nested documents can be filtered. Nil values count as missing.
func (r Record) Get(key string) (interface{}, bool) {
	if pjson.IsPath(key) {
		val, found, err := pjson.Lookup(map[string]interface{}(r), key)
		if err != nil || !found {
			return nil, false
		}
		return val, true
	}
	val, ok := r[key]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}
