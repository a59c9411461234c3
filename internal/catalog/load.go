package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// courseFile is the on-disk shape of a custom course definition.
type courseFile struct {
	Worlds []World `json:"worlds"`
}

// compiledSchema caches the compiled course schema.
var compiledSchema struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// Load reads a custom course catalog from a JSON file. The file is
// checked against the course schema before decoding, then the decoded
// worlds go through the same structural validation as the built-in
// course.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}

	schema, err := courseSchema()
	if err != nil {
		return nil, fmt.Errorf("compile course schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("schema validation failed: %v", err)}}
	}

	var cf courseFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode course file: %w", err)
	}
	return New(cf.Worlds)
}

// courseSchema returns the compiled course schema, compiling it once.
func courseSchema() (*jsonschema.Schema, error) {
	compiledSchema.once.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(courseSchemaJSON), &def); err != nil {
			compiledSchema.err = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://course.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compiledSchema.err = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema.schema, compiledSchema.err = c.Compile(schemaURL)
	})
	return compiledSchema.schema, compiledSchema.err
}
