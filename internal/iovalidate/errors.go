package iovalidate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/errcode"
)

func SchemaError(name string, err error) error {
	msg := "Cannot compile embedded schema <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidationSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot compile schema: %w", fn, err),
	}
}
