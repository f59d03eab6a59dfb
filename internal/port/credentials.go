package port

// CredentialSource supplies the inference API key at call time.
// An empty string means no credential is configured.
type CredentialSource interface {
	APIKey() string
}
