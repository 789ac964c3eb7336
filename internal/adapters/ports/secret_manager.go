package ports

import (
	"context"
)

// Secret represents a retrieved secret with metadata
type Secret struct {
	Value     string            // The secret value (e.g., HMAC key, API key)
	Version   string            // Secret version identifier
	Metadata  map[string]string // Additional secret metadata
	CreatedAt string            // When this version was created
}

// SecretManagerAdapter defines the port for retrieving secrets from a
// secret management service. Backends: local filesystem (development),
// HashiCorp Vault, AWS Secrets Manager.
// Implementations are responsible for authentication with the backend and
// for caching secrets with a TTL.
//
// Path format depends on implementation:
//   - local: "adyen-connector/hmac-key" relative to the base directory
//   - Vault: "adyen-connector/hmac-key" under the configured KV mount
//   - AWS:   secret name or full ARN
type SecretManagerAdapter interface {
	// GetSecret retrieves a secret by its path/name.
	// Returns an error if the secret does not exist, permissions are
	// insufficient, or the backend is unreachable.
	GetSecret(ctx context.Context, path string) (*Secret, error)

	// PutSecret creates or updates a secret and returns the new version
	// identifier.
	PutSecret(ctx context.Context, path string, value string, metadata map[string]string) (version string, err error)

	// DeleteSecret permanently deletes a secret. Irreversible.
	DeleteSecret(ctx context.Context, path string) error
}
