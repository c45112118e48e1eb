package goprop

// Kind is the canonical wire category a property value resolves to. Every
// accepted dynamic type maps to exactly one Kind, so a property is only ever
// emitted through one encoding path.
type Kind int

const (
	KindUnsupported Kind = iota
	KindSigned           // signed integers up to 64 bits
	KindUnsigned         // unsigned integers up to 64 bits
	KindFloat            // 32/64-bit floating point
	KindBool
	KindChar   // single-byte character (goprop.Char)
	KindString
	KindObject   // a Source encoding a nested document
	KindSequence // ordered elements
	KindMapping  // key/value pairs
)

func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unsupported"
	}
}

// KindFromName parses the registerable kind names produced by Kind.String.
// "unsupported" is not registerable; it and anything unknown return
// KindUnsupported and false.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "signed":
		return KindSigned, true
	case "unsigned":
		return KindUnsigned, true
	case "float":
		return KindFloat, true
	case "bool":
		return KindBool, true
	case "char":
		return KindChar, true
	case "string":
		return KindString, true
	case "object":
		return KindObject, true
	case "sequence":
		return KindSequence, true
	case "mapping":
		return KindMapping, true
	}
	return KindUnsupported, false
}

// Resolve classifies a value into its canonical Kind. The match order is
// fixed: bool, Char, string, Source, Mapping (then map[string]any), Sequence
// (then []any), signed, unsigned, float. Note that byte==uint8 and rune==int32
// in Go, so a bare byte resolves to KindUnsigned and a bare rune to
// KindSigned; only the defined type Char resolves to KindChar.
func Resolve(v any) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case Char:
		return KindChar
	case string:
		return KindString
	case Source:
		return KindObject
	case Mapping:
		return KindMapping
	case map[string]any:
		return KindMapping
	case Sequence:
		return KindSequence
	case []any:
		return KindSequence
	case int, int8, int16, int32, int64:
		return KindSigned
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return KindUnsigned
	case float32, float64:
		return KindFloat
	default:
		return KindUnsupported
	}
}
