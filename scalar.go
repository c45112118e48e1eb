package goprop

import "strconv"

// UnsupportedFragment is the sentinel emitted for values that resolve to no
// canonical kind. It is itself a valid quoted fragment, so documents stay
// parseable.
const UnsupportedFragment = `"[unsupported type]"`

// The fixed-width formatters exist as dedicated paths next to the generic
// 64-bit ones. Both members of a family must render identical text for equal
// values; which path runs depends only on the value's nominal type.

func formatInt64(v int64) string   { return strconv.FormatInt(v, 10) }
func formatInt32(v int32) string   { return strconv.FormatInt(int64(v), 10) }
func formatUint64(v uint64) string { return strconv.FormatUint(v, 10) }
func formatUint32(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

func formatFloat64(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func formatFloat32(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

// encodeScalar renders one scalar value. ok is false when v is not a scalar
// of a known kind (containers, objects and unsupported values are handled by
// the caller).
func encodeScalar(v any) (frag string, kind Kind, ok bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return "true", KindBool, true
		}
		return "false", KindBool, true
	case Char:
		return quoteString(string([]byte{byte(x)})), KindChar, true
	case string:
		return quoteString(x), KindString, true

	// Generic signed path: int is at least 32 bits and at most 64, so it
	// widens losslessly.
	case int:
		return formatInt64(int64(x)), KindSigned, true
	case int64:
		return formatInt64(x), KindSigned, true
	// Fixed-width signed path. rune lands on the int32 case.
	case int8:
		return formatInt32(int32(x)), KindSigned, true
	case int16:
		return formatInt32(int32(x)), KindSigned, true
	case int32:
		return formatInt32(x), KindSigned, true

	// Generic unsigned path.
	case uint:
		return formatUint64(uint64(x)), KindUnsigned, true
	case uint64:
		return formatUint64(x), KindUnsigned, true
	case uintptr:
		return formatUint64(uint64(x)), KindUnsigned, true
	// Fixed-width unsigned path. byte lands on the uint8 case.
	case uint8:
		return formatUint32(uint32(x)), KindUnsigned, true
	case uint16:
		return formatUint32(uint32(x)), KindUnsigned, true
	case uint32:
		return formatUint32(x), KindUnsigned, true

	case float64:
		return formatFloat64(x), KindFloat, true
	case float32:
		return formatFloat32(x), KindFloat, true
	}
	return "", KindUnsupported, false
}
