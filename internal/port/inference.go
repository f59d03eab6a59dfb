package port

import "context"

// GenerateRequest carries one multimodal structured-output request.
type GenerateRequest struct {
	APIKey            string
	Prompt            string
	SystemInstruction string
	// Schema is a JSON Schema object describing the required output shape.
	Schema      map[string]any
	ImageBase64 string
	ImageMime   string
}

// InferenceClient abstracts a hosted multimodal model. Generate returns the
// raw text payload of the response, which may be empty.
type InferenceClient interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Name() string
}
