// Package subscript resolves container[key] get, set, and delete for
// compiled code. Dispatch is two-tiered: a container's mapping capability
// always wins over its sequence capability, and two exact builtin kinds
// (list, string) have storage-level fast paths reachable when the key is a
// statically-known integer.
package subscript

import (
	"flint/internal/object"
)

// Lookup resolves container[key] with a generic key. Mapping capability is
// consulted first even when the key is integer-shaped; only
// sequence-capable containers convert the key to a machine integer.
func Lookup(source, subscript object.Object) (object.Object, *object.Error) {
	m := object.ItemMethodsOf(source)

	if m != nil && m.HasMapping && m.MappingGet != nil {
		return m.MappingGet(source, subscript)
	}

	if m != nil && m.HasSequence {
		if object.IndexCheck(subscript) {
			i, err := object.AsIndex(subscript)
			if err != nil {
				return nil, err
			}
			if m.SequenceGet == nil {
				return nil, errUnsubscriptable(source)
			}
			return m.SequenceGet(source, i)
		}
		if m.SequenceGet != nil {
			return nil, errSequenceIndex(subscript)
		}
		return nil, errUnsubscriptable(source)
	}

	return nil, errUnsubscriptable(source)
}

// LookupConst resolves container[key] when the key is known to be an
// integer literal: subscript is the key object, index its pre-decoded
// value. The two builtin fast-path kinds read their storage directly,
// skipping capability dispatch entirely. That is safe only because their
// descriptors are the package singletons in internal/object and cannot be
// overridden; the equivalence with Lookup is covered by tests rather than
// assumed.
func LookupConst(source, subscript object.Object, index int64) (object.Object, *object.Error) {
	switch s := source.(type) {
	case *object.List:
		off, err := object.NormalizeIndex(index, len(s.Elements), "list")
		if err != nil {
			return nil, err
		}
		return s.Elements[off], nil
	case *object.String:
		off, err := object.NormalizeIndex(index, len(s.Value), "string")
		if err != nil {
			return nil, err
		}
		return object.Chr(s.Value[off]), nil
	}

	m := object.ItemMethodsOf(source)

	if m != nil && m.HasMapping && m.MappingGet != nil {
		return m.MappingGet(source, subscript)
	}

	if m != nil && m.HasSequence && m.SequenceGet != nil {
		return m.SequenceGet(source, index)
	}

	return nil, errUnsubscriptable(source)
}

// Assign resolves container[key] = value. The index handed to a sequence
// set slot is signed and not pre-normalized; wraparound is the slot's own
// responsibility.
func Assign(value, target, subscript object.Object) *object.Error {
	m := object.ItemMethodsOf(target)

	if m != nil && m.HasMapping && m.MappingSet != nil {
		return m.MappingSet(target, subscript, value)
	}

	if m != nil && m.HasSequence {
		if object.IndexCheck(subscript) {
			i, err := object.AsIndex(subscript)
			if err != nil {
				return err
			}
			if m.SequenceSet == nil {
				return errNoItemAssignment(target)
			}
			return m.SequenceSet(target, i, value)
		}
		if m.SequenceSet != nil {
			return errSequenceIndex(subscript)
		}
		return errNoItemAssignment(target)
	}

	return errNoItemAssignment(target)
}

// Delete resolves del container[key]. It delegates wholesale to the object
// model's generic deletion entry; any failure from there propagates
// unchanged.
func Delete(target, subscript object.Object) *object.Error {
	return object.DelItem(target, subscript)
}

func errUnsubscriptable(source object.Object) *object.Error {
	return object.NewTypeError("'%s' object is unsubscriptable", object.TypeName(source))
}

func errSequenceIndex(subscript object.Object) *object.Error {
	return object.NewTypeError("sequence index must be integer, not '%s'", object.TypeName(subscript))
}

func errNoItemAssignment(target object.Object) *object.Error {
	return object.NewTypeError("'%s' object does not support item assignment", object.TypeName(target))
}
