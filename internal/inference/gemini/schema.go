package gemini

import "strings"

// Gemini's responseSchema is an OpenAPI subset: type names are upper case and
// keywords outside this set are rejected.
var schemaKeywords = map[string]bool{
	"type":        true,
	"description": true,
	"enum":        true,
	"format":      true,
	"nullable":    true,
	"required":    true,
}

// toGeminiSchema converts a JSON Schema object into Gemini's schema dialect.
func toGeminiSchema(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}
	out := make(map[string]any, len(schema))
	for key, val := range schema {
		switch key {
		case "properties":
			props, ok := val.(map[string]any)
			if !ok {
				continue
			}
			converted := make(map[string]any, len(props))
			for name, prop := range props {
				if p, ok := prop.(map[string]any); ok {
					converted[name] = toGeminiSchema(p)
				}
			}
			out[key] = converted
		case "items":
			if item, ok := val.(map[string]any); ok {
				out[key] = toGeminiSchema(item)
			}
		case "type":
			if s, ok := val.(string); ok {
				out[key] = strings.ToUpper(s)
			}
		default:
			if schemaKeywords[key] {
				out[key] = val
			}
		}
	}
	return out
}
