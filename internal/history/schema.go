package history

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const logSchemaURL = "schema://tapquiz/history.json"

// logSchema describes the persisted log: an array of round entries.
const logSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["ts", "ok", "total", "acc"],
		"properties": {
			"ts":    {"type": "integer", "minimum": 0},
			"ok":    {"type": "integer", "minimum": 0},
			"total": {"type": "integer", "minimum": 0},
			"acc":   {"type": "number", "minimum": 0, "maximum": 100}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compileLogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(logSchema), &doc); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(logSchemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(logSchemaURL)
	})
	return compiledSchema, schemaErr
}

// validateLog checks raw against the log schema before it is decoded.
func validateLog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compileLogSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
