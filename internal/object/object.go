package object

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"
)

const (
	NIL_OBJ     = "NIL"
	BOOLEAN_OBJ = "BOOLEAN"
	INTEGER_OBJ = "INTEGER"
	STRING_OBJ  = "STRING"
	BYTE_OBJ    = "BYTES"

	LIST_OBJ = "LIST"
	MAP_OBJ  = "MAP"

	ERROR_OBJ = "ERROR"
)

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

type ObjectType string

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Hashable interface {
	Object
	MapKey() MapKey
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) MapKey() MapKey {
	return MapKey{Type: i.Type(), Value: uint64(i.Value)}
}

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) MapKey() MapKey {
	var value uint64
	if b.Value {
		value = 1
	}
	return MapKey{Type: b.Type(), Value: value}
}

// String is a fixed single-byte-per-character sequence. Subscripting
// addresses bytes, which is what makes the direct storage fast path valid.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }
func (s *String) MapKey() MapKey {
	h := fnv.New64a()
	for _, r := range s.Value {
		var buf [4]byte
		n := utf8.EncodeRune(buf[:], r)
		h.Write(buf[:n])
	}
	return MapKey{Type: s.Type(), Value: h.Sum64()}
}

type Bytes struct {
	Value []byte
}

func (b *Bytes) Type() ObjectType { return BYTE_OBJ }
func (b *Bytes) Inspect() string {
	return `0x"` + hex.EncodeToString(b.Value) + `"`
}
func (b *Bytes) MapKey() MapKey {
	h := fnv.New64a()
	h.Write(b.Value)
	return MapKey{Type: b.Type(), Value: h.Sum64()}
}

type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }

type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer

	elements := []string{}
	for _, e := range l.Elements {
		elements = append(elements, e.Inspect())
	}

	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")

	return out.String()
}

type MapKey struct {
	Type  ObjectType
	Value uint64
}

type MapPair struct {
	Key   Object
	Value Object
}

type Map struct {
	Pairs map[MapKey]MapPair
}

func (m *Map) Type() ObjectType { return MAP_OBJ }
func (m *Map) Inspect() string {
	var out bytes.Buffer

	pairs := []string{}
	for _, pair := range m.Pairs {
		pairs = append(pairs, fmt.Sprintf("%s: %s",
			pair.Key.Inspect(), pair.Value.Inspect()))
	}

	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")

	return out.String()
}

// Put simplify adding objects to a map
func (m *Map) Put(k Hashable, v Object) *Map {
	if m.Pairs == nil {
		m.Pairs = map[MapKey]MapPair{}
	}
	m.Pairs[k.MapKey()] = MapPair{
		Key:   k,
		Value: v,
	}
	return m
}
func (m *Map) Get(k Hashable) (Object, bool) {
	pair, ok := m.Pairs[k.MapKey()]
	return pair.Value, ok
}

// Error kinds, matching the exception taxonomy of the reference runtime.
const (
	KindIndex  = "IndexError"
	KindType   = "TypeError"
	KindKey    = "KeyError"
	KindSystem = "SystemError"
)

// Error is the failure currency of the runtime: operations return it
// in-band instead of unwinding. Kind and Message together must match the
// reference runtime byte for byte.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return e.Kind + ": " + e.Message }

func NewIndexError(format string, a ...interface{}) *Error {
	return &Error{Kind: KindIndex, Message: fmt.Sprintf(format, a...)}
}

func NewTypeError(format string, a ...interface{}) *Error {
	return &Error{Kind: KindType, Message: fmt.Sprintf(format, a...)}
}

func NewKeyError(format string, a ...interface{}) *Error {
	return &Error{Kind: KindKey, Message: fmt.Sprintf(format, a...)}
}

func NewSystemError(format string, a ...interface{}) *Error {
	return &Error{Kind: KindSystem, Message: fmt.Sprintf(format, a...)}
}

func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

func NativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}
