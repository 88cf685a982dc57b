package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema an imported catalog file must satisfy.
const catalogSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "category", "difficulty"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"title": {"type": "string", "minLength": 1},
			"category": {"type": "string", "minLength": 1},
			"difficulty": {"enum": ["Easy", "Medium", "Hard", "VeryHard"]},
			"companies": {"type": "array", "items": {"type": "string"}},
			"link": {"type": "string"},
			"timeEstimateMinutes": {"type": "integer", "minimum": 0}
		},
		"additionalProperties": false
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(catalogSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Parse validates raw JSON against the catalog schema and builds a Catalog.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	var problems []Problem
	if err := json.Unmarshal(raw, &problems); err != nil {
		return nil, fmt.Errorf("decode problems: %w", err)
	}
	return New(problems)
}

// LoadFile reads and parses a catalog JSON file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(raw)
}
