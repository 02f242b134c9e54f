package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Conversion errors
	ConvertInputError
	ConvertFieldError
	ConvertOutputError
	ConvertAllRecordsFailedError

	// Batch errors
	BatchConfigError
	BatchInputError

	// Validation errors
	ValidationSchemaError
	ValidationReportError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBInsertError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Store errors
	StoreReadError
	StoreDecodeError
	StoreSQLiteError
)
