package subscript

import (
	"flint/internal/object"
)

// Operand is a deferred operand expression. Compiled call sites wrap each
// side-effecting sub-expression in one so the wrappers below can pin down
// the observable evaluation order.
type Operand func() (object.Object, *object.Error)

// Value wraps an already-evaluated object as an Operand.
func Value(o object.Object) Operand {
	return func() (object.Object, *object.Error) { return o, nil }
}

// LookupOrdered evaluates source then subscript, stopping at the first
// failing operand, and performs the lookup.
func LookupOrdered(source, subscript Operand) (object.Object, *object.Error) {
	src, err := source()
	if err != nil {
		return nil, err
	}
	sub, err := subscript()
	if err != nil {
		return nil, err
	}
	return Lookup(src, sub)
}

// AssignOrdered evaluates value, then target, then subscript. The order is
// part of the contract: a failure in a later operand must still see the
// side effects of the earlier ones.
func AssignOrdered(value, target, subscript Operand) *object.Error {
	val, err := value()
	if err != nil {
		return err
	}
	tgt, err := target()
	if err != nil {
		return err
	}
	sub, err := subscript()
	if err != nil {
		return err
	}
	return Assign(val, tgt, sub)
}

// DeleteOrdered evaluates target then subscript and performs the deletion.
func DeleteOrdered(target, subscript Operand) *object.Error {
	tgt, err := target()
	if err != nil {
		return err
	}
	sub, err := subscript()
	if err != nil {
		return err
	}
	return Delete(tgt, sub)
}
