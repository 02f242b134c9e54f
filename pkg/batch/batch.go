// Package batch describes batches.yaml: the list of CSV inputs the
// batch command converts in one run.
package batch

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"gopkg.in/yaml.v3"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/errcode"
)

// Job is one conversion task: a CSV input of one record kind and the
// JSON-LD file it produces.
type Job struct {
	// Name labels the job in logs and summaries.
	Name string `yaml:"name"`
	// Kind is either "authorities" or "citations".
	Kind string `yaml:"kind"`
	// Input is the path to the source CSV file.
	Input string `yaml:"input"`
	// Output is the path of the JSON-LD file to write. When empty the
	// output path is derived from Input.
	Output string `yaml:"output,omitempty"`
}

// batchesFile mirrors the top level of batches.yaml.
type batchesFile struct {
	Batches []Job `yaml:"batches"`
}

// Read loads and validates the jobs from a batches.yaml file.
func Read(path string) ([]Job, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}

	var bf batchesFile
	if err = yaml.Unmarshal(bs, &bf); err != nil {
		return nil, readError(path, err)
	}

	for i := range bf.Batches {
		if err = validate(&bf.Batches[i], i); err != nil {
			return nil, err
		}
	}
	return bf.Batches, nil
}

func validate(j *Job, idx int) error {
	j.Kind = strings.ToLower(strings.TrimSpace(j.Kind))
	if j.Kind != "authorities" && j.Kind != "citations" {
		return &gn.Error{
			Code: errcode.BatchConfigError,
			Msg:  "Batch %d: kind must be 'authorities' or 'citations', got <em>%s</em>",
			Vars: []any{idx + 1, j.Kind},
			Err: fmt.Errorf("invalid batch kind %q at index %d",
				j.Kind, idx),
		}
	}
	if strings.TrimSpace(j.Input) == "" {
		return &gn.Error{
			Code: errcode.BatchConfigError,
			Msg:  "Batch %d: input file is required",
			Vars: []any{idx + 1},
			Err:  fmt.Errorf("empty input at index %d", idx),
		}
	}
	if j.Name == "" {
		j.Name = j.Input
	}
	if j.Output == "" {
		j.Output = DeriveOutput(j.Input)
	}
	return nil
}

// DeriveOutput replaces the input extension with ".json".
func DeriveOutput(input string) string {
	if i := strings.LastIndex(input, "."); i > strings.LastIndex(input, "/") {
		return input[:i] + ".json"
	}
	return input + ".json"
}

func readError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BatchConfigError,
		Msg:  "Cannot read batches file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot read batches file: %w", fn, err),
	}
}
