package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/errcode"
)

func ConnectionError(
	host string, port int, database, user string, err error,
) error {
	msg := "Cannot connect to <em>%s:%d/%s</em> as <em>%s</em>"
	vars := []any{host, port, database, user}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot connect to database: %w", fn, err),
	}
}

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: database is not connected", fn),
	}
}

func TableCheckError(err error) error {
	msg := "Cannot check database tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot check tables: %w", fn, err),
	}
}

func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot drop table: %w", fn, err),
	}
}

func GORMConnectionError(err error) error {
	msg := "Cannot initialize GORM over the connection pool"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot initialize gorm: %w", fn, err),
	}
}

func CreateSchemaError(err error) error {
	msg := "Cannot create the document store schema"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot create schema: %w", fn, err),
	}
}

func InsertError(table string, err error) error {
	msg := "Cannot insert into <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot insert rows: %w", fn, err),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read documents file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read documents: %w", fn, err),
	}
}

func DecodeError(path string, err error) error {
	msg := "Cannot decode documents file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode documents: %w", fn, err),
	}
}

func SQLiteError(path string, err error) error {
	msg := "SQLite operation failed on <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreSQLiteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: sqlite operation failed: %w", fn, err),
	}
}
