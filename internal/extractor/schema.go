package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaResource = "extracted_data.json"

// itemFields are the keys every item object must carry, even when empty.
var itemFields = []string{"model", "gb", "pcs", "color", "coo", "spec", "remarks"}

// ResponseSchema returns the JSON Schema of an ExtractedData document.
// It is sent to the provider as the structured output constraint and
// compiled locally to check the shape of what comes back.
func ResponseSchema() map[string]any {
	required := make([]string, len(itemFields))
	copy(required, itemFields)

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"company":      map[string]any{"type": "string"},
			"customerCode": map[string]any{"type": "string"},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"model":   map[string]any{"type": "string"},
						"gb":      map[string]any{"type": "string"},
						"pcs":     map[string]any{"type": "integer"},
						"color":   map[string]any{"type": "string"},
						"coo":     map[string]any{"type": "string"},
						"spec":    map[string]any{"type": "string"},
						"remarks": map[string]any{"type": "string"},
					},
					"required": required,
				},
			},
		},
		"required": []string{"items"},
	}
}

func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
