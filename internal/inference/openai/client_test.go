package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelaudit/internal/config"
	"labelaudit/internal/inference"
	"labelaudit/internal/inference/openai"
	"labelaudit/internal/port"
)

func newTestClient(serverURL string) *openai.Client {
	cfg := &config.InferenceConfig{
		Provider:    "openai",
		Model:       "gpt-4o",
		TimeoutSecs: 30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL+"/")
}

func testRequest() port.GenerateRequest {
	return port.GenerateRequest{
		APIKey:            "sk-test",
		Prompt:            "Identify the device.",
		SystemInstruction: "You are an auditor.",
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"items"},
		},
		ImageBase64: "/9j/4AAQ",
		ImageMime:   "image/jpeg",
	}
}

func completionBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestClient_Generate_VerifyRequestFormat(t *testing.T) {
	var capturedReq map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&capturedReq))

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(completionBody(`{"items":[]}`)))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, text)

	assert.Equal(t, "gpt-4o", capturedReq["model"])

	messages := capturedReq["messages"].([]interface{})
	require.Len(t, messages, 2)
	system := messages[0].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You are an auditor.", system["content"])

	user := messages[1].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	parts := user["content"].([]interface{})
	require.Len(t, parts, 2)
	image := parts[0].(map[string]interface{})
	assert.Equal(t, "image_url", image["type"])
	assert.Equal(t, "data:image/jpeg;base64,/9j/4AAQ", image["image_url"].(map[string]interface{})["url"])
	text0 := parts[1].(map[string]interface{})
	assert.Equal(t, "text", text0["type"])
	assert.Equal(t, "Identify the device.", text0["text"])

	format := capturedReq["response_format"].(map[string]interface{})
	assert.Equal(t, "json_schema", format["type"])
	jsonSchema := format["json_schema"].(map[string]interface{})
	assert.Equal(t, "extracted_data", jsonSchema["name"])
	assert.Equal(t, "object", jsonSchema["schema"].(map[string]interface{})["type"])
}

func TestClient_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "20")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), testRequest())

	var rlErr *inference.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, 20*time.Second, rlErr.RetryAfter)
}

func TestClient_Generate_Unauthorized(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), testRequest())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "calling openai API")
	assert.Equal(t, 1, calls)
}

func TestClient_Generate_NoChoicesIsEmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := completionBody("")
		body["choices"] = []interface{}{}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestClient_Name_DefaultModel(t *testing.T) {
	c := openai.NewClient(&config.InferenceConfig{Provider: "openai"})

	assert.Equal(t, "openai/gpt-4o", c.Name())
}
