// Package iovalidate checks produced JSON-LD documents against the
// embedded JSON schemas before they are written out.
package iovalidate

import (
	"bytes"
	"embed"
	"regexp"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

//go:embed schemas/authority.json schemas/citation.json
var schemasFS embed.FS

// Validator holds the compiled authority and citation schemas.
type Validator struct {
	authority *jsonschema.Schema
	citation  *jsonschema.Schema
}

// New compiles the embedded schemas. It fails only when an embedded
// schema is broken, which means a packaging problem.
func New() (*Validator, error) {
	c := jsonschema.NewCompiler()
	for _, name := range []string{"authority.json", "citation.json"} {
		data, err := schemasFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, SchemaError(name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, SchemaError(name, err)
		}
		if err = c.AddResource(name, doc); err != nil {
			return nil, SchemaError(name, err)
		}
	}

	res := &Validator{}
	var err error
	if res.authority, err = c.Compile("authority.json"); err != nil {
		return nil, SchemaError("authority.json", err)
	}
	if res.citation, err = c.Compile("citation.json"); err != nil {
		return nil, SchemaError("citation.json", err)
	}
	return res, nil
}

// Validate checks one document against the schema for its kind. It
// returns true when the document is valid, otherwise it returns the
// list of problems as "path: message" strings.
func (v *Validator) Validate(doc map[string]any, kind relation.Kind) (bool, []string) {
	sch := v.authority
	if kind == relation.Citation {
		sch = v.citation
	}

	// Fragments built in memory carry Go types the schema engine does
	// not accept, []string @type lists in particular. A JSON round-trip
	// brings the document to decoded-JSON shape first.
	data, err := gnfmt.GNjson{}.Encode(doc)
	if err != nil {
		return false, []string{err.Error()}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return false, []string{err.Error()}
	}

	if err = sch.Validate(inst); err != nil {
		return false, problems(err)
	}
	return true, nil
}

var problemRe = regexp.MustCompile(`^- at '(.*?)':\s*(.*)$`)

// problems flattens a validation error into one string per failed
// check. The root cause line of the error is skipped, it only names
// the schema.
func problems(err error) []string {
	var res []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		m := problemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		path := m[1]
		if path == "" {
			path = "/"
		}
		res = append(res, path+": "+m[2])
	}
	if len(res) == 0 {
		res = append(res, err.Error())
	}
	return res
}
