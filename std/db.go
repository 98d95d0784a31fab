package std

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/mrya-lang/mrya/values"
)

// dbHandle wraps an open *sql.DB as opaque native state (spec §7 Domain
// stack, db module). modernc.org/sqlite is a pure-Go sqlite3 driver, so no
// cgo toolchain is required to use it, matching the rest of this module's
// zero-native-dependency goal.
type dbHandle struct {
	conn *sql.DB
	path string
}

func (*dbHandle) Type() values.Type { return values.Type("native:db") }
func (h *dbHandle) String() string  { return "<db " + h.path + ">" }
func (h *dbHandle) Inspect() string { return h.String() }

// NewDBModule builds the `db` native module.
func NewDBModule() *values.Module {
	b := NewModule("db")
	b.Func("open", 1, dbOpen)
	b.Variadic("exec", 2, dbExec)
	b.Variadic("query", 2, dbQuery)
	b.Func("close", 1, dbClose)
	return b.Build()
}

// Syntax: open(path) -- ":memory:" for an in-memory database
func dbOpen(args []values.Value) (values.Value, error) {
	path, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("open", 0, "string", args[0])
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, ArgError("open", "could not open %q: %v", path, err)
	}
	return &dbHandle{conn: conn, path: path}, nil
}

func asDB(fn string, v values.Value) (*dbHandle, error) {
	h, ok := v.(*dbHandle)
	if !ok {
		return nil, WrongType(fn, 0, "db handle", v)
	}
	return h, nil
}

func sqlParams(args []values.Value) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		out[i] = toGo(a)
	}
	return out
}

// Syntax: exec(h, sql_text, ...params) -- returns rows affected
func dbExec(args []values.Value) (values.Value, error) {
	h, err := asDB("exec", args[0])
	if err != nil {
		return nil, err
	}
	stmt, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("exec", 1, "string", args[1])
	}
	res, err := h.conn.Exec(stmt, sqlParams(args[2:])...)
	if err != nil {
		return nil, ArgError("exec", "exec failed: %v", err)
	}
	n, _ := res.RowsAffected()
	return I(n), nil
}

// Syntax: query(h, sql_text, ...params) -- returns a list of row maps
func dbQuery(args []values.Value) (values.Value, error) {
	h, err := asDB("query", args[0])
	if err != nil {
		return nil, err
	}
	stmt, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("query", 1, "string", args[1])
	}
	rows, err := h.conn.Query(stmt, sqlParams(args[2:])...)
	if err != nil {
		return nil, ArgError("query", "query failed: %v", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, ArgError("query", "could not read columns: %v", err)
	}

	var out []values.Value
	for rows.Next() {
		scan := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range scan {
			ptrs[i] = &scan[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, ArgError("query", "scan failed: %v", err)
		}
		row := values.NewMap()
		for i, col := range cols {
			row.Set(Str(col), fromSQL(scan[i]))
		}
		out = append(out, row)
	}
	return values.NewList(out), nil
}

// fromSQL converts a database/sql scanned value into a Mrya value.
func fromSQL(v interface{}) values.Value {
	switch x := v.(type) {
	case nil:
		return values.NilValue
	case int64:
		return I(x)
	case float64:
		return F(x)
	case bool:
		return B(x)
	case string:
		return Str(x)
	case []byte:
		return Str(string(x))
	default:
		return Str("")
	}
}

// Syntax: close(h)
func dbClose(args []values.Value) (values.Value, error) {
	h, err := asDB("close", args[0])
	if err != nil {
		return nil, err
	}
	if err := h.conn.Close(); err != nil {
		return nil, ArgError("close", "close failed: %v", err)
	}
	return values.NilValue, nil
}
