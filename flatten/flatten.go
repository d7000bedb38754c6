// Modified version of github.com/jeremywohl/flatten

package flatten

import (
	"encoding/json"
	"fmt"
)

// DefaultSeparator joins a parent key to its child key
const DefaultSeparator = "_"

// Flatten generates a flat map from a nested one, joining nested keys with sep
// (DefaultSeparator when empty). Slices become their JSON array encoding, such as ["a",1].
func Flatten(nested map[string]interface{}, sep string) (map[string]interface{}, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	flatmap := make(map[string]interface{})
	if err := flatten(flatmap, nested, "", sep); err != nil {
		return nil, err
	}
	return flatmap, nil
}

func flatten(flatMap map[string]interface{}, nested interface{}, prefix, sep string) error {
	kv, ok := nested.(map[string]interface{})
	if !ok {
		return fmt.Errorf("not a valid input, %v", nested)
	}
	for k, v := range kv {
		newKey := k
		if prefix != "" {
			newKey = prefix + sep + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			if err := flatten(flatMap, val, newKey, sep); err != nil {
				return err
			}
		case []interface{}:
			b, err := json.Marshal(val)
			if err != nil {
				return err
			}
			flatMap[newKey] = string(b)
		default:
			flatMap[newKey] = v
		}
	}
	return nil
}
