package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ToString converts a database or spreadsheet value to its textual cell form.
// Nil yields ok=false so callers can tell a NULL apart from an empty string.
func ToString(val any) (s string, ok bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("02/01/2006"), true
		}
		return v.Format("02/01/2006 15:04:05"), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
