// Package convert turns the raw tabular fields of IsisCB records into
// JSON-LD fragments. Each converter is a pure function of its input
// row and the static vocabulary tables; fragments from all converters
// for one record are merged into a single document by the pipeline.
//
// Converters degrade gracefully: absent, blank, or NaN-equivalent
// input yields an empty fragment, and malformed sub-entries are
// dropped with a warning rather than failing the record.
package convert

import (
	"fmt"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/errcode"
	"github.com/gnames/gn"
)

// Row is one tabular record: a mapping from column header to raw cell
// value.
type Row map[string]string

// blankEquivalents are cell values treated as "field not present".
var blankEquivalents = map[string]struct{}{
	"": {}, "NaN": {}, "nan": {}, "N/A": {}, "n/a": {}, "None": {},
}

// Get returns the trimmed cell value for a column. The second return
// value is false when the column is absent or holds a
// blank-equivalent value.
func (r Row) Get(key string) (string, bool) {
	v := strings.TrimSpace(r[key])
	if _, blank := blankEquivalents[v]; blank {
		return "", false
	}
	return v, true
}

// Value returns the trimmed cell value, with blank-equivalents
// normalized to "".
func (r Row) Value(key string) string {
	v, _ := r.Get(key)
	return v
}

// Has reports whether the column holds a usable value.
func (r Row) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// fieldError wraps a systemic converter failure with the field name
// and record id, so the pipeline can mark the record invalid and
// continue the batch.
func fieldError(field, recordID string, err error) error {
	return &gn.Error{
		Code: errcode.ConvertFieldError,
		Msg:  fmt.Sprintf("Failed to convert '%s' of record %s", field, recordID),
		Err:  err,
	}
}
