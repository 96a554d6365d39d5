package textgen

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// paragraphSchema is the structured output every provider requests.
var paragraphSchema = map[string]any{
	"type":     "object",
	"required": []any{"topic", "text"},
	"properties": map[string]any{
		"topic": map[string]any{
			"type":        "string",
			"description": "Two or three word label for the paragraph",
			"minLength":   1,
		},
		"text": map[string]any{
			"type":        "string",
			"description": "The practice paragraph as flowing prose",
			"minLength":   50,
		},
	},
}

const schemaName = "practice-paragraph"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledParagraphSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		raw, err := json.Marshal(paragraphSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", schemaName)
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// parseParagraph validates raw provider output against the paragraph
// schema and decodes it.
func parseParagraph(raw json.RawMessage) (*Paragraph, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidParagraph{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledParagraphSchema()
	if err != nil {
		return nil, fmt.Errorf("compile paragraph schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidParagraph{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var p Paragraph
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &ErrInvalidParagraph{Content: raw, Err: err}
	}

	// Collapse whitespace runs so pagination sees a flat paragraph.
	p.Text = strings.Join(strings.Fields(p.Text), " ")
	p.Topic = strings.TrimSpace(p.Topic)
	return &p, nil
}
