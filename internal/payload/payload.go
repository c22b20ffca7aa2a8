// Package payload provides safe typed accessors over decoded JSON payloads.
// Upstream responses are decoded into map[string]interface{}; every read
// goes through these helpers so a missing or mistyped field degrades to a
// zero value instead of panicking.
package payload

import "strconv"

// String extracts a string from a map.
func String(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// Bool extracts a bool from a map.
func Bool(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Map extracts a nested map from a map.
func Map(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

// Array extracts an array from a map.
func Array(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

// MapAt extracts the map at index i of an array.
func MapAt(arr []interface{}, i int) map[string]interface{} {
	if i < len(arr) {
		if mapVal, ok := arr[i].(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

// Stringify renders a scalar payload value as its display string.
// ESPN mixes strings and JSON numbers for the same logical fields.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return ""
	}
}
