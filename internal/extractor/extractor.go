package extractor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"labelaudit/internal/domain"
	"labelaudit/internal/inference"
	"labelaudit/internal/port"
)

const rawLogLimit = 500

// Extractor implements port.LabelExtractor on top of a multimodal InferenceClient.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	client port.InferenceClient
	creds  port.CredentialSource
	schema map[string]any
	shape  *jsonschema.Schema
	logger *zap.Logger
}

// New creates an Extractor. The credential is looked up on every Extract call.
func New(client port.InferenceClient, creds port.CredentialSource, logger *zap.Logger) (*Extractor, error) {
	schema := ResponseSchema()
	shape, err := compileSchema(schema)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		client: client,
		creds:  creds,
		schema: schema,
		shape:  shape,
		logger: logger.Named("extractor"),
	}, nil
}

// Extract sends one base64 JPEG label image to the model and returns the parsed result.
//
// Failures are *domain.ConfigurationError (no credential, nothing sent),
// *domain.ServiceError (provider call failed) or *domain.ResponseFormatError
// (reply is not a well-formed ExtractedData). An empty reply is not a failure
// and yields an ExtractedData with no items.
func (e *Extractor) Extract(ctx context.Context, encodedImage string) (*domain.ExtractedData, error) {
	apiKey := e.creds.APIKey()
	if apiKey == "" {
		e.logger.Error("inference credential missing")
		return nil, &domain.ConfigurationError{Reason: "inference API key is missing"}
	}

	if err := checkBase64(encodedImage); err != nil {
		return nil, err
	}

	text, err := e.client.Generate(ctx, port.GenerateRequest{
		APIKey:            apiKey,
		Prompt:            UserInstruction,
		SystemInstruction: SystemInstruction,
		Schema:            e.schema,
		ImageBase64:       encodedImage,
		ImageMime:         domain.ImageMimeType,
	})
	if err != nil {
		e.logger.Warn("inference call failed",
			zap.String("provider", e.client.Name()),
			zap.Error(err),
		)
		return nil, &domain.ServiceError{Provider: e.client.Name(), Err: err}
	}

	if text == "" {
		e.logger.Info("empty model response", zap.String("provider", e.client.Name()))
		return domain.EmptyExtraction(), nil
	}

	data, err := e.parse(text)
	if err != nil {
		e.logger.Warn("model response rejected",
			zap.String("provider", e.client.Name()),
			zap.String("raw", inference.Truncate(text, rawLogLimit)),
			zap.Error(err),
		)
		return nil, &domain.ResponseFormatError{Raw: text, Err: err}
	}

	e.logger.Debug("label extracted",
		zap.String("provider", e.client.Name()),
		zap.Int("items", len(data.Items)),
	)
	return data, nil
}

// parse decodes text and checks it against the response schema. Field values
// are copied as-is.
func (e *Extractor) parse(text string) (*domain.ExtractedData, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	if err := e.shape.Validate(doc); err != nil {
		return nil, fmt.Errorf("json does not match schema: %w", err)
	}

	var data domain.ExtractedData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("decoding extracted data: %w", err)
	}
	return &data, nil
}

// checkBase64 rejects empty or non-base64 input before anything is sent.
func checkBase64(s string) error {
	if s == "" {
		return domain.ErrInvalidImage
	}
	n, err := io.Copy(io.Discard, base64.NewDecoder(base64.StdEncoding, strings.NewReader(s)))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	if n == 0 {
		return domain.ErrInvalidImage
	}
	return nil
}
