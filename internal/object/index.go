package object

// IndexCheck reports whether a key is integer-shaped, i.e. usable as a
// sequence subscript without conversion loss. Booleans count as indexes,
// as in the reference runtime.
func IndexCheck(o Object) bool {
	switch o.(type) {
	case *Integer, *Boolean:
		return true
	}
	return false
}

// AsIndex converts an index-shaped key into a machine integer. Callers
// normally guard with IndexCheck; anything else fails with IndexError.
func AsIndex(o Object) (int64, *Error) {
	switch v := o.(type) {
	case *Integer:
		return v.Value, nil
	case *Boolean:
		if v.Value {
			return 1, nil
		}
		return 0, nil
	}
	return 0, NewIndexError("cannot convert '%s' to an index", TypeName(o))
}

// NormalizeIndex turns a possibly-negative subscript into a zero-based,
// bounds-checked offset against the container's current length. Out-of-range
// subscripts always fail; there is no clamping. kind is the human-readable
// container-kind name used in the error message.
func NormalizeIndex(i int64, length int, kind string) (int64, *Error) {
	if i < 0 {
		i += int64(length)
	}
	if i < 0 || i >= int64(length) {
		return 0, NewIndexError("%s index out of range", kind)
	}
	return i, nil
}

var chrCache [256]*String

func init() {
	for i := range chrCache {
		chrCache[i] = &String{Value: string([]byte{byte(i)})}
	}
}

// Chr builds the single-character string for a byte. Shared instances are
// fine: strings are immutable.
func Chr(c byte) *String {
	return chrCache[c]
}
