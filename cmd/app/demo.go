package main

import (
	"fmt"
	"io"
	"log/slog"

	"flint/internal/foreign"
	"flint/internal/object"
	"flint/internal/subscript"
	"flint/internal/util"
)

// runDemo walks every container kind through the four public operations and
// prints what compiled code would observe, failures included.
func runDemo(w io.Writer, config util.Configuration) error {

	list := &object.List{Elements: []object.Object{
		&object.String{Value: "a"},
		&object.String{Value: "b"},
		&object.String{Value: "c"},
	}}
	str := &object.String{Value: "flint"}
	pairs := (&object.Map{}).Put(&object.String{Value: "a"}, &object.Integer{Value: 1})

	v, e := subscript.Lookup(list, &object.Integer{Value: 1})
	show(w, "list[1]", v, e)
	v, e = subscript.Lookup(list, &object.Integer{Value: -1})
	show(w, "list[-1]", v, e)
	v, e = subscript.Lookup(list, &object.Integer{Value: 5})
	show(w, "list[5]", v, e)
	v, e = subscript.LookupConst(str, &object.Integer{Value: 0}, 0)
	show(w, "str[0] (const fast path)", v, e)
	v, e = subscript.Lookup(pairs, &object.String{Value: "a"})
	show(w, `pairs["a"]`, v, e)
	v, e = subscript.Lookup(&object.Integer{Value: 42}, &object.Integer{Value: 0})
	show(w, "42[0]", v, e)

	if err := subscript.Assign(&object.Integer{Value: 9}, pairs, &object.String{Value: "a"}); err != nil {
		fmt.Fprintf(w, "pairs[\"a\"] = 9      !! %s\n", err.Inspect())
	} else {
		v, e = subscript.Lookup(pairs, &object.String{Value: "a"})
		show(w, `pairs["a"] after assignment`, v, e)
	}

	if err := subscript.Delete(str, &object.Integer{Value: 0}); err != nil {
		fmt.Fprintf(w, "%-32s !! %s\n", "del str[0]", err.Inspect())
	}

	if config.DBDriver != "" {
		if err := runDBDemo(w, config); err != nil {
			return err
		}
	}

	return nil
}

func runDBDemo(w io.Writer, config util.Configuration) error {
	slog.Info("opening dbmap", slog.String("driver", config.DBDriver))

	dbm, err := foreign.Open(config.DBDriver, config.DBConn, config.DBTable)
	if err != nil {
		return err
	}
	defer dbm.Close()

	key := &object.String{Value: "greeting"}
	if errObj := subscript.Assign(&object.String{Value: "hello"}, dbm, key); errObj != nil {
		return fmt.Errorf("%s", errObj.Inspect())
	}
	v, e := subscript.Lookup(dbm, key)
	show(w, `dbmap["greeting"]`, v, e)

	if errObj := subscript.Delete(dbm, key); errObj != nil {
		return fmt.Errorf("%s", errObj.Inspect())
	}
	v, e = subscript.Lookup(dbm, key)
	show(w, `dbmap["greeting"] after deletion`, v, e)

	return nil
}

func show(w io.Writer, label string, result object.Object, errObj *object.Error) {
	if errObj != nil {
		fmt.Fprintf(w, "%-32s !! %s\n", label, errObj.Inspect())
		return
	}
	fmt.Fprintf(w, "%-32s => %s\n", label, result.Inspect())
}
