package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))
}

// Document DDL methods

func (d Document) TableDDL() string {
	return generateDDL(d, "documents")
}

func (d Document) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_documents_record_id ON documents(record_id);",
		"CREATE INDEX idx_documents_kind ON documents(kind);",
	}
}

func (d Document) TableName() string {
	return "documents"
}

// ConversionRun DDL methods

func (r ConversionRun) TableDDL() string {
	return generateDDL(r, "conversion_runs")
}

func (r ConversionRun) IndexDDL() []string {
	return nil
}

func (r ConversionRun) TableName() string {
	return "conversion_runs"
}
