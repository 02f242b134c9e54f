package ioconvert

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/errcode"
)

func OutputFileError(path string, err error) error {
	msg := "Cannot write output file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConvertOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write output: %w", fn, err),
	}
}

func ReportError(path string, err error) error {
	msg := "Cannot write validation report <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidationReportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write report: %w", fn, err),
	}
}

func AllRecordsFailedError(path string, total int) error {
	msg := "All <em>%d</em> records from <em>%s</em> failed to convert"
	vars := []any{total, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConvertAllRecordsFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: all %d records failed", fn, total),
	}
}

func CancelledError(err error) error {
	msg := "Conversion interrupted"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConvertInputError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: conversion interrupted: %w", fn, err),
	}
}
