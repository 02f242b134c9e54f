package iocsv

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/errcode"
)

func InputFileError(path string, err error) error {
	msg := "Cannot read CSV file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConvertInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read csv: %w", fn, err),
	}
}
