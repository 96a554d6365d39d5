package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// CustomText is a user-supplied practice text.
type CustomText struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// customTextSchema constrains imported custom text files. Content is
// capped at 5000 characters so a single session stays a manageable
// number of pages.
var customTextSchema = map[string]any{
	"type":     "object",
	"required": []any{"texts"},
	"properties": map[string]any{
		"texts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"title", "content"},
				"properties": map[string]any{
					"title": map[string]any{
						"type":      "string",
						"minLength": 1,
						"maxLength": 100,
					},
					"content": map[string]any{
						"type":      "string",
						"minLength": 10,
						"maxLength": 5000,
					},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func importSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		raw, err := json.Marshal(customTextSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://custom-texts.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// ImportCustomTexts parses and validates a custom text import file.
func ImportCustomTexts(data []byte) ([]CustomText, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := importSchema()
	if err != nil {
		return nil, fmt.Errorf("compile import schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate import: %w", err)
	}

	var file struct {
		Texts []CustomText `json:"texts"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode import: %w", err)
	}
	return file.Texts, nil
}
