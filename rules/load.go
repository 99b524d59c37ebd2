package rules

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// AllBranches is the key consulted when the document has no entry for the
// requested branch.
const AllBranches = ".all"

const (
	MaxDirs  = 256
	MaxRegex = 64
)

// ErrInvalidRules is wrapped by every error caused by the document content.
var ErrInvalidRules = errors.New("invalid rules document")

//go:embed rules.schema.json
var schemaJSON []byte

const schemaURL = "https://github.com/fcharlie/commit365/rules.schema.json"

var rulesSchema = sync.OnceValues(compileSchema)

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
}

// Load reads a rules document and builds the engine for branch, falling back
// to the ".all" entry. A document with neither entry yields an empty engine.
// Non-string list items are skipped; expressions that do not compile are
// skipped and reported by Engine.Invalid.
func Load(r io.Reader, branch string) (*Engine, error) {
	sch, err := rulesSchema()
	if err != nil {
		return nil, fmt.Errorf("rules schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	e := New()
	branches, _ := inst.(map[string]any)
	entry, ok := branches[branch].(map[string]any)
	if !ok {
		if entry, ok = branches[AllBranches].(map[string]any); !ok {
			return e, nil
		}
	}
	for _, v := range stringItems(entry["dirs"]) {
		e.AddPrefix(v)
	}
	for _, v := range stringItems(entry["regex"]) {
		_ = e.AddRegex(v) // kept in Invalid
	}
	return e, nil
}

// LoadFile is Load on the named file.
func LoadFile(name, branch string) (*Engine, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	e, err := Load(f, branch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return e, nil
}

func stringItems(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
