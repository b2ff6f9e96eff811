package gitapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Values is the options mapping attached to a call: free-form keys, scalar
// or collection values, absent key means "use the server default". Keys may
// be written with hyphens; they are normalized to the wire format
// (underscores) on encoding, for both query parameters and JSON bodies.
// The remote API silently ignores unrecognized keys, so skipping the
// normalization would drop options on the floor.
type Values map[string]any

func wireKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// Encode returns the query-parameter form of v with normalized keys.
func (v Values) Encode() url.Values {
	if len(v) == 0 {
		return nil
	}
	query := make(url.Values, len(v))
	for key, value := range v {
		switch t := value.(type) {
		case []string:
			for _, item := range t {
				query.Add(wireKey(key), item)
			}
		default:
			query.Set(wireKey(key), queryValue(value))
		}
	}
	return query
}

func queryValue(value any) string {
	switch t := value.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// MarshalJSON encodes v as a JSON object with normalized keys. Nested
// values are encoded as-is: key normalization applies to the top level
// only, which is where the API's option names live.
func (v Values) MarshalJSON() ([]byte, error) {
	normalized := make(map[string]any, len(v))
	for key, value := range v {
		normalized[wireKey(key)] = value
	}
	return json.Marshal(normalized)
}
