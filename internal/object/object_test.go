package object

import "testing"

func TestStringMapKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	if hello1.MapKey() != hello2.MapKey() {
		t.Errorf("strings with same content have different map keys")
	}

	if diff1.MapKey() != diff2.MapKey() {
		t.Errorf("strings with same content have different map keys")
	}

	if hello1.MapKey() == diff1.MapKey() {
		t.Errorf("strings with different content have same map keys")
	}
}

func TestBooleanMapKey(t *testing.T) {
	true1 := &Boolean{Value: true}
	true2 := &Boolean{Value: true}
	false1 := &Boolean{Value: false}
	false2 := &Boolean{Value: false}

	if true1.MapKey() != true2.MapKey() {
		t.Errorf("trues do not have same map key")
	}

	if false1.MapKey() != false2.MapKey() {
		t.Errorf("falses do not have same map key")
	}

	if true1.MapKey() == false1.MapKey() {
		t.Errorf("true has same map key as false")
	}
}

func TestIntegerMapKey(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two1 := &Integer{Value: 2}
	two2 := &Integer{Value: 2}

	if one1.MapKey() != one2.MapKey() {
		t.Errorf("integers with same content have different map keys")
	}

	if two1.MapKey() != two2.MapKey() {
		t.Errorf("integers with same content have different map keys")
	}

	if one1.MapKey() == two1.MapKey() {
		t.Errorf("integers with different content have same map keys")
	}
}

func TestMapPutGet(t *testing.T) {
	m := &Map{}
	m.Put(&String{Value: "a"}, &Integer{Value: 1})

	v, ok := m.Get(&String{Value: "a"})
	if !ok {
		t.Fatalf("key not found after Put")
	}
	if v.(*Integer).Value != 1 {
		t.Errorf("expected 1, got %s", v.Inspect())
	}

	if _, ok := m.Get(&String{Value: "b"}); ok {
		t.Errorf("found a key that was never put")
	}
}

func TestErrorInspect(t *testing.T) {
	err := NewTypeError("'%s' object is unsubscriptable", "int")
	if err.Kind != KindType {
		t.Errorf("wrong kind: %s", err.Kind)
	}
	if err.Message != "'int' object is unsubscriptable" {
		t.Errorf("wrong message: %q", err.Message)
	}
	if err.Inspect() != "TypeError: 'int' object is unsubscriptable" {
		t.Errorf("wrong inspect: %q", err.Inspect())
	}
}

func TestNormalizeIndexWraparound(t *testing.T) {
	const length = 5

	// Normalize(-k, L) == Normalize(L-k, L) for 1 <= k <= L
	for k := int64(1); k <= length; k++ {
		neg, err := NormalizeIndex(-k, length, "list")
		if err != nil {
			t.Fatalf("Normalize(%d, %d) failed: %s", -k, length, err.Message)
		}
		pos, err := NormalizeIndex(length-k, length, "list")
		if err != nil {
			t.Fatalf("Normalize(%d, %d) failed: %s", length-k, length, err.Message)
		}
		if neg != pos {
			t.Errorf("Normalize(%d)=%d but Normalize(%d)=%d", -k, neg, length-k, pos)
		}
	}

	// out of range in both directions
	for _, i := range []int64{-6, -100, 5, 6, 100} {
		if _, err := NormalizeIndex(i, length, "list"); err == nil {
			t.Errorf("Normalize(%d, %d) should fail", i, length)
		} else if err.Kind != KindIndex || err.Message != "list index out of range" {
			t.Errorf("Normalize(%d, %d): wrong error %s", i, length, err.Inspect())
		}
	}

	// empty container rejects everything
	for _, i := range []int64{-1, 0, 1} {
		if _, err := NormalizeIndex(i, 0, "list"); err == nil {
			t.Errorf("Normalize(%d, 0) should fail", i)
		}
	}
}

func TestNormalizeIndexKindName(t *testing.T) {
	_, err := NormalizeIndex(9, 3, "string")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if err.Message != "string index out of range" {
		t.Errorf("wrong message: %q", err.Message)
	}
}

func TestIndexCheck(t *testing.T) {
	if !IndexCheck(&Integer{Value: 3}) {
		t.Errorf("integer should be index-shaped")
	}
	if !IndexCheck(TRUE) {
		t.Errorf("boolean should be index-shaped")
	}
	if IndexCheck(&String{Value: "0"}) {
		t.Errorf("string should not be index-shaped")
	}
	if IndexCheck(NIL) {
		t.Errorf("nil should not be index-shaped")
	}
}

func TestAsIndex(t *testing.T) {
	i, err := AsIndex(&Integer{Value: -7})
	if err != nil || i != -7 {
		t.Errorf("AsIndex(-7) = %d, %v", i, err)
	}

	i, err = AsIndex(TRUE)
	if err != nil || i != 1 {
		t.Errorf("AsIndex(true) = %d, %v", i, err)
	}

	if _, err := AsIndex(&String{Value: "x"}); err == nil {
		t.Errorf("AsIndex on a string should fail")
	} else if err.Kind != KindIndex {
		t.Errorf("AsIndex failure should be an IndexError, got %s", err.Kind)
	}
}

func TestChr(t *testing.T) {
	if got := Chr('f').Value; got != "f" {
		t.Errorf("Chr('f') = %q", got)
	}
	// bytes above 127 stay single-byte
	if got := Chr(0xC8).Value; got != "\xc8" {
		t.Errorf("Chr(0xC8) = %q", got)
	}
	if Chr('a') != Chr('a') {
		t.Errorf("Chr should return shared instances")
	}
}
