package logger

import (
	"math"
	"sort"
	"time"

	"github.com/philipp01105/pipelog/core"
)

// Field helper functions for convenience

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return core.Field{Key: key, Type: core.BoolType, Int64: int64Val}
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an error field
func Err(err error) core.Field {
	if err == nil {
		return core.Field{Key: "error", Type: core.ErrorType, Str: ""}
	}
	return core.Field{Key: "error", Type: core.ErrorType, Str: err.Error()}
}

// Any creates a field with any value
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}

// Metadata converts a map into fields ordered by key. Common value types
// get their typed field; everything else becomes an Any field.
func Metadata(m map[string]any) []core.Field {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]core.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fieldOf(k, m[k]))
	}
	return fields
}

func fieldOf(key string, v any) core.Field {
	switch val := v.(type) {
	case string:
		return String(key, val)
	case int:
		return Int(key, val)
	case int8:
		return Int64(key, int64(val))
	case int16:
		return Int64(key, int64(val))
	case int32:
		return Int64(key, int64(val))
	case int64:
		return Int64(key, val)
	case uint8:
		return Int64(key, int64(val))
	case uint16:
		return Int64(key, int64(val))
	case uint32:
		return Int64(key, int64(val))
	case uint:
		return uint64Field(key, uint64(val))
	case uint64:
		return uint64Field(key, val)
	case float32:
		return Float64(key, float64(val))
	case float64:
		return Float64(key, val)
	case bool:
		return Bool(key, val)
	case time.Time:
		return Time(key, val)
	case time.Duration:
		return Duration(key, val)
	case error:
		return core.Field{Key: key, Type: core.ErrorType, Str: val.Error()}
	default:
		return Any(key, val)
	}
}

// uint64Field keeps values above math.MaxInt64 as Any so they are not
// wrapped into negative numbers.
func uint64Field(key string, v uint64) core.Field {
	if v > math.MaxInt64 {
		return Any(key, v)
	}
	return Int64(key, int64(v))
}
