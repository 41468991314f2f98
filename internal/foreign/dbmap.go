package foreign

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"flint/internal/object"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const DBMAP_OBJ object.ObjectType = "DBMAP"

// DBMap is a mapping-capable container whose pairs persist in a SQL table.
// It plugs into the subscript protocol through the same capability
// descriptor the builtin kinds use, so compiled code reads and writes it
// exactly like an in-memory map. Keys and values are scalars, stored as
// tagged text.
type DBMap struct {
	db     *sql.DB
	driver string
	table  string
}

var dbMapMethods = &object.ItemMethods{
	HasMapping: true,
	MappingGet: dbMapGet,
	MappingSet: dbMapSet,
	ItemDelete: dbMapDelete,
}

// Open connects through the named database/sql driver (sqlite3, mysql or
// postgres), pings, and creates the backing table when missing.
func Open(driver, dsn, table string) (*DBMap, error) {
	if !validIdent(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (k TEXT PRIMARY KEY, v TEXT NOT NULL)", table)
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	slog.Debug("dbmap opened", slog.String("driver", driver), slog.String("table", table))

	return &DBMap{db: db, driver: driver, table: table}, nil
}

func (d *DBMap) Close() error {
	return d.db.Close()
}

func (d *DBMap) Type() object.ObjectType { return DBMAP_OBJ }
func (d *DBMap) Inspect() string {
	return fmt.Sprintf("<dbmap %s>", d.table)
}
func (d *DBMap) TypeName() string { return "dbmap" }

func (d *DBMap) ItemMethods() *object.ItemMethods { return dbMapMethods }

// Len reports the current pair count. Not part of the subscript protocol;
// used by callers that surface the container.
func (d *DBMap) Len() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM " + d.table).Scan(&n)
	return n, err
}

// placeholder returns the driver's positional parameter marker.
func (d *DBMap) placeholder(n int) string {
	if d.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func dbMapGet(o, key object.Object) (object.Object, *object.Error) {
	d := o.(*DBMap)
	k, errObj := encodeKey(key)
	if errObj != nil {
		return nil, errObj
	}

	q := fmt.Sprintf("SELECT v FROM %s WHERE k = %s", d.table, d.placeholder(1))
	var v string
	err := d.db.QueryRow(q, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, object.NewKeyError("%s", key.Inspect())
	}
	if err != nil {
		return nil, object.NewSystemError("dbmap read failed: %v", err)
	}
	return decodeValue(v)
}

func dbMapSet(o, key, value object.Object) *object.Error {
	d := o.(*DBMap)
	k, errObj := encodeKey(key)
	if errObj != nil {
		return errObj
	}
	v, errObj := encodeValue(value)
	if errObj != nil {
		return errObj
	}

	// delete+insert instead of an upsert so the same statements work on
	// all three drivers
	tx, err := d.db.Begin()
	if err != nil {
		return object.NewSystemError("dbmap write failed: %v", err)
	}
	del := fmt.Sprintf("DELETE FROM %s WHERE k = %s", d.table, d.placeholder(1))
	if _, err := tx.Exec(del, k); err != nil {
		tx.Rollback()
		return object.NewSystemError("dbmap write failed: %v", err)
	}
	ins := fmt.Sprintf("INSERT INTO %s (k, v) VALUES (%s, %s)", d.table, d.placeholder(1), d.placeholder(2))
	if _, err := tx.Exec(ins, k, v); err != nil {
		tx.Rollback()
		return object.NewSystemError("dbmap write failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return object.NewSystemError("dbmap write failed: %v", err)
	}
	return nil
}

func dbMapDelete(o, key object.Object) *object.Error {
	d := o.(*DBMap)
	k, errObj := encodeKey(key)
	if errObj != nil {
		return errObj
	}

	q := fmt.Sprintf("DELETE FROM %s WHERE k = %s", d.table, d.placeholder(1))
	res, err := d.db.Exec(q, k)
	if err != nil {
		return object.NewSystemError("dbmap delete failed: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return object.NewSystemError("dbmap delete failed: %v", err)
	}
	if n == 0 {
		return object.NewKeyError("%s", key.Inspect())
	}
	return nil
}

// Stored form is a one-letter type tag, a colon, then the payload. Keys and
// values share the encoding; keys additionally require hashability.

func encodeKey(key object.Object) (string, *object.Error) {
	if _, ok := key.(object.Hashable); !ok {
		return "", object.NewTypeError("unhashable type: '%s'", object.TypeName(key))
	}
	s, errObj := encodeScalar(key)
	if errObj != nil {
		return "", object.NewTypeError("dbmap keys must be scalar, not '%s'", object.TypeName(key))
	}
	return s, nil
}

func encodeValue(value object.Object) (string, *object.Error) {
	s, errObj := encodeScalar(value)
	if errObj != nil {
		return "", object.NewTypeError("dbmap values must be scalar, not '%s'", object.TypeName(value))
	}
	return s, nil
}

func encodeScalar(o object.Object) (string, *object.Error) {
	switch v := o.(type) {
	case *object.String:
		return "s:" + v.Value, nil
	case *object.Integer:
		return "i:" + strconv.FormatInt(v.Value, 10), nil
	case *object.Boolean:
		if v.Value {
			return "b:1", nil
		}
		return "b:0", nil
	case *object.Nil:
		return "n:", nil
	}
	return "", object.NewTypeError("not a scalar: '%s'", object.TypeName(o))
}

func decodeValue(s string) (object.Object, *object.Error) {
	tag, payload, ok := strings.Cut(s, ":")
	if !ok {
		return nil, object.NewSystemError("corrupt dbmap value %q", s)
	}
	switch tag {
	case "s":
		return &object.String{Value: payload}, nil
	case "i":
		n, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil, object.NewSystemError("corrupt dbmap value %q", s)
		}
		return &object.Integer{Value: n}, nil
	case "b":
		return object.NativeBoolToBooleanObject(payload == "1"), nil
	case "n":
		return object.NIL, nil
	}
	return nil, object.NewSystemError("corrupt dbmap value %q", s)
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
