package object

// ItemMethods is the per-kind capability descriptor for item access. A
// container kind exposes mapping-style access, sequence-style access, both,
// or neither; the dispatcher in internal/subscript routes on these slots and
// never inspects container internals itself.
//
// HasSequence with a nil SequenceGet models "sequence capability present but
// no direct item access": the kind participates in sequence dispatch for
// error selection but cannot be read by index.
type ItemMethods struct {
	HasMapping bool
	MappingGet func(o, key Object) (Object, *Error)
	MappingSet func(o, key, value Object) *Error

	HasSequence bool
	SequenceGet func(o Object, i int64) (Object, *Error)
	SequenceSet func(o Object, i int64, v Object) *Error

	ItemDelete func(o, key Object) *Error
}

// ItemCapable is the hook for container kinds defined outside this package.
// The returned descriptor must be a per-kind singleton, not built per call.
type ItemCapable interface {
	Object
	ItemMethods() *ItemMethods
}

// TypeNamer lets extension kinds report the type name used in error
// messages.
type TypeNamer interface {
	TypeName() string
}

// Descriptors for the builtin kinds are resolved once, here, and shared by
// every instance of the kind.
var (
	listMethods = &ItemMethods{
		HasMapping:  true,
		MappingGet:  listMappingGet,
		MappingSet:  listMappingSet,
		HasSequence: true,
		SequenceGet: listSequenceGet,
		SequenceSet: listSequenceSet,
		ItemDelete:  listItemDelete,
	}

	stringMethods = &ItemMethods{
		HasMapping:  true,
		MappingGet:  stringMappingGet,
		HasSequence: true,
		SequenceGet: stringSequenceGet,
	}

	bytesMethods = &ItemMethods{
		HasSequence: true,
		SequenceGet: bytesSequenceGet,
	}

	mapMethods = &ItemMethods{
		HasMapping: true,
		MappingGet: mapMappingGet,
		MappingSet: mapMappingSet,
		ItemDelete: mapItemDelete,
	}
)

// ItemMethodsOf resolves the capability descriptor for a container. The
// builtin kinds are a closed set dispatched by concrete type; anything else
// may plug in through ItemCapable. A nil result means the object has no item
// capabilities at all.
func ItemMethodsOf(o Object) *ItemMethods {
	switch o.(type) {
	case *List:
		return listMethods
	case *String:
		return stringMethods
	case *Bytes:
		return bytesMethods
	case *Map:
		return mapMethods
	}
	if c, ok := o.(ItemCapable); ok {
		return c.ItemMethods()
	}
	return nil
}

// DelItem is the object model's generic deletion entry. Kinds without a
// deletion slot fail here; the subscript layer propagates this unchanged.
func DelItem(target, key Object) *Error {
	m := ItemMethodsOf(target)
	if m == nil || m.ItemDelete == nil {
		return NewTypeError("'%s' object doesn't support item deletion", TypeName(target))
	}
	return m.ItemDelete(target, key)
}

// TypeName returns the runtime type name used in error messages. Note the
// asymmetry with index errors: a String is 'str' here but "string" in
// "string index out of range", matching the reference runtime.
func TypeName(o Object) string {
	switch o.(type) {
	case *Integer:
		return "int"
	case *Boolean:
		return "bool"
	case *String:
		return "str"
	case *Bytes:
		return "bytes"
	case *List:
		return "list"
	case *Map:
		return "map"
	case *Nil:
		return "nil"
	case *Error:
		return "error"
	}
	if n, ok := o.(TypeNamer); ok {
		return n.TypeName()
	}
	return "object"
}

func listMappingGet(o, key Object) (Object, *Error) {
	l := o.(*List)
	if !IndexCheck(key) {
		return nil, NewTypeError("list indices must be integers, not '%s'", TypeName(key))
	}
	i, err := AsIndex(key)
	if err != nil {
		return nil, err
	}
	return listSequenceGet(l, i)
}

func listMappingSet(o, key, value Object) *Error {
	l := o.(*List)
	if !IndexCheck(key) {
		return NewTypeError("list indices must be integers, not '%s'", TypeName(key))
	}
	i, err := AsIndex(key)
	if err != nil {
		return err
	}
	return listSequenceSet(l, i, value)
}

func listSequenceGet(o Object, i int64) (Object, *Error) {
	l := o.(*List)
	off, err := NormalizeIndex(i, len(l.Elements), "list")
	if err != nil {
		return nil, err
	}
	return l.Elements[off], nil
}

func listSequenceSet(o Object, i int64, v Object) *Error {
	l := o.(*List)
	off, err := NormalizeIndex(i, len(l.Elements), "list assignment")
	if err != nil {
		return err
	}
	l.Elements[off] = v
	return nil
}

func listItemDelete(o, key Object) *Error {
	l := o.(*List)
	if !IndexCheck(key) {
		return NewTypeError("list indices must be integers, not '%s'", TypeName(key))
	}
	i, err := AsIndex(key)
	if err != nil {
		return err
	}
	off, err := NormalizeIndex(i, len(l.Elements), "list assignment")
	if err != nil {
		return err
	}
	l.Elements = append(l.Elements[:off], l.Elements[off+1:]...)
	return nil
}

func stringMappingGet(o, key Object) (Object, *Error) {
	s := o.(*String)
	if !IndexCheck(key) {
		return nil, NewTypeError("string indices must be integers, not '%s'", TypeName(key))
	}
	i, err := AsIndex(key)
	if err != nil {
		return nil, err
	}
	return stringSequenceGet(s, i)
}

func stringSequenceGet(o Object, i int64) (Object, *Error) {
	s := o.(*String)
	off, err := NormalizeIndex(i, len(s.Value), "string")
	if err != nil {
		return nil, err
	}
	return Chr(s.Value[off]), nil
}

func bytesSequenceGet(o Object, i int64) (Object, *Error) {
	b := o.(*Bytes)
	off, err := NormalizeIndex(i, len(b.Value), "bytes")
	if err != nil {
		return nil, err
	}
	return &Integer{Value: int64(b.Value[off])}, nil
}

func mapMappingGet(o, key Object) (Object, *Error) {
	m := o.(*Map)
	k, ok := key.(Hashable)
	if !ok {
		return nil, NewTypeError("unhashable type: '%s'", TypeName(key))
	}
	pair, ok := m.Pairs[k.MapKey()]
	if !ok {
		return nil, NewKeyError("%s", key.Inspect())
	}
	return pair.Value, nil
}

func mapMappingSet(o, key, value Object) *Error {
	m := o.(*Map)
	k, ok := key.(Hashable)
	if !ok {
		return NewTypeError("unhashable type: '%s'", TypeName(key))
	}
	m.Put(k, value)
	return nil
}

func mapItemDelete(o, key Object) *Error {
	m := o.(*Map)
	k, ok := key.(Hashable)
	if !ok {
		return NewTypeError("unhashable type: '%s'", TypeName(key))
	}
	mk := k.MapKey()
	if _, present := m.Pairs[mk]; !present {
		return NewKeyError("%s", key.Inspect())
	}
	delete(m.Pairs, mk)
	return nil
}
