package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/Peersyst/xrpl-go/binary-codec/definitions"
)

// normalize returns a copy of obj with numeric values converted to the Go
// type xrpl-go expects for each field: int for UInt8 and UInt16, uint32 for
// UInt32, a hex string for UInt64 and a drops string for Amount. Numbers may
// arrive as float64 (encoding/json), json.Number (Decoder.UseNumber) or any
// Go integer kind. Fields the definitions do not know are copied as is.
func normalize(obj map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		fi, err := definitions.Get().GetFieldInfoByFieldName(k)
		if err != nil {
			out[k] = v
			continue
		}
		nv, err := normalizeField(k, fi.Type, v)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeField(name, typ string, v any) (any, error) {
	switch typ {
	case "UInt8", "UInt16":
		if _, ok := v.(string); ok {
			return v, nil
		}
		limit := uint64(math.MaxUint8)
		if typ == "UInt16" {
			limit = math.MaxUint16
		}
		n, err := toUint(name, v, limit)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	case "UInt32":
		if s, ok := v.(string); ok {
			v = json.Number(s)
		}
		n, err := toUint(name, v, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return uint32(n), nil
	case "UInt64":
		if _, ok := v.(string); ok {
			return v, nil
		}
		n, err := toUint(name, v, math.MaxUint64)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%016X", n), nil
	case "Amount":
		switch a := v.(type) {
		case string:
			return a, nil
		case map[string]any:
			return normalizeIssued(name, a)
		}
		n, err := toUint(name, v, math.MaxInt64)
		if err != nil {
			return nil, err
		}
		return strconv.FormatUint(n, 10), nil
	case "STObject":
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %s: want object, got %T", name, v)
		}
		return normalize(m)
	case "STArray":
		return normalizeArray(name, v)
	}
	return v, nil
}

func normalizeArray(name string, v any) (any, error) {
	var items []map[string]any
	switch a := v.(type) {
	case []map[string]any:
		items = a
	case []any:
		items = make([]map[string]any, 0, len(a))
		for i, e := range a {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("field %s[%d]: want object, got %T", name, i, e)
			}
			items = append(items, m)
		}
	default:
		return nil, fmt.Errorf("field %s: want array, got %T", name, v)
	}
	out := make([]any, len(items))
	for i, m := range items {
		nm, err := normalize(m)
		if err != nil {
			return nil, err
		}
		out[i] = nm
	}
	return out, nil
}

// normalizeIssued checks an issued amount has its three string members,
// turning a numeric value into its decimal text.
func normalizeIssued(name string, a map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v
	}
	switch val := a["value"].(type) {
	case string:
	case json.Number:
		out["value"] = val.String()
	case float64:
		out["value"] = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return nil, fmt.Errorf("field %s: amount value has type %T", name, a["value"])
	}
	for _, k := range []string{"currency", "issuer"} {
		if _, ok := a[k].(string); !ok {
			return nil, fmt.Errorf("field %s: amount %s missing", name, k)
		}
	}
	return out, nil
}

// toUint converts v to an unsigned integer no greater than limit.
func toUint(name string, v any, limit uint64) (uint64, error) {
	var n uint64
	switch x := v.(type) {
	case json.Number:
		u, err := strconv.ParseUint(x.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %s: %q is not an unsigned integer", name, x.String())
		}
		n = u
	case float64:
		if x < 0 || x != math.Trunc(x) || x >= 1<<64 {
			return 0, fmt.Errorf("field %s: %v is not an unsigned integer", name, x)
		}
		n = uint64(x)
	case int:
		if x < 0 {
			return 0, fmt.Errorf("field %s: %d is negative", name, x)
		}
		n = uint64(x)
	case int8:
		if x < 0 {
			return 0, fmt.Errorf("field %s: %d is negative", name, x)
		}
		n = uint64(x)
	case int16:
		if x < 0 {
			return 0, fmt.Errorf("field %s: %d is negative", name, x)
		}
		n = uint64(x)
	case int32:
		if x < 0 {
			return 0, fmt.Errorf("field %s: %d is negative", name, x)
		}
		n = uint64(x)
	case int64:
		if x < 0 {
			return 0, fmt.Errorf("field %s: %d is negative", name, x)
		}
		n = uint64(x)
	case uint:
		n = uint64(x)
	case uint8:
		n = uint64(x)
	case uint16:
		n = uint64(x)
	case uint32:
		n = uint64(x)
	case uint64:
		n = x
	default:
		return 0, fmt.Errorf("field %s: want a number, got %T", name, v)
	}
	if n > limit {
		return 0, fmt.Errorf("field %s: %d out of range", name, n)
	}
	return n, nil
}
