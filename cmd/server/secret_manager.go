package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/internal/adapters/secrets"
	"github.com/velobpa/adyen-connector/internal/config"
)

// initSecretManager initializes the secret manager configured by
// SECRETS_BACKEND. The "env" backend returns nil: credentials are
// taken directly from the environment.
func initSecretManager(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.SecretManagerAdapter, error) {
	switch cfg.Secrets.Backend {
	case "vault":
		return initVaultSecretManager(ctx, logger)
	case "aws":
		return initAWSSecretManager(ctx, logger)
	case "local":
		basePath := os.Getenv("SECRETS_LOCAL_PATH")
		if basePath == "" {
			basePath = "./secrets"
		}
		logger.Info("Using local file secret manager", zap.String("path", basePath))
		return secrets.NewLocalSecretManager(basePath, logger), nil
	case "env":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown secrets backend: %s", cfg.Secrets.Backend)
	}
}

func initVaultSecretManager(ctx context.Context, logger *zap.Logger) (ports.SecretManagerAdapter, error) {
	address := os.Getenv("VAULT_ADDR")
	if address == "" {
		return nil, fmt.Errorf("VAULT_ADDR is required for the vault secrets backend")
	}

	vaultCfg := secrets.DefaultVaultConfig(address)
	vaultCfg.Token = os.Getenv("VAULT_TOKEN")
	if roleID := os.Getenv("VAULT_ROLE_ID"); roleID != "" {
		vaultCfg.AuthMethod = "approle"
		vaultCfg.RoleID = roleID
		vaultCfg.SecretID = os.Getenv("VAULT_SECRET_ID")
	}
	if namespace := os.Getenv("VAULT_NAMESPACE"); namespace != "" {
		vaultCfg.Namespace = namespace
	}
	if mountPath := os.Getenv("VAULT_MOUNT_PATH"); mountPath != "" {
		vaultCfg.MountPath = mountPath
	}

	logger.Info("Using HashiCorp Vault secret manager",
		zap.String("address", address),
		zap.String("auth_method", vaultCfg.AuthMethod),
	)
	return secrets.NewVaultAdapter(ctx, vaultCfg, logger)
}

func initAWSSecretManager(ctx context.Context, logger *zap.Logger) (ports.SecretManagerAdapter, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		return nil, fmt.Errorf("AWS_REGION is required for the aws secrets backend")
	}

	logger.Info("Using AWS Secrets Manager", zap.String("region", region))
	return secrets.NewAWSSecretsManagerAdapter(ctx, secrets.DefaultAWSSecretsManagerConfig(region), logger)
}

// resolveCredentials fills in the Adyen API key and HMAC key from the
// configured secrets backend. Secret values are never logged.
func resolveCredentials(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	manager, err := initSecretManager(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if manager == nil {
		return nil
	}

	if cfg.Adyen.APIKey == "" {
		secret, err := manager.GetSecret(ctx, cfg.Secrets.APIKeyName)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", cfg.Secrets.APIKeyName, err)
		}
		cfg.Adyen.APIKey = secret.Value
	}

	if cfg.Adyen.HMACKey == "" && cfg.Webhook.ValidateHMAC {
		secret, err := manager.GetSecret(ctx, cfg.Secrets.HMACKeyName)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", cfg.Secrets.HMACKeyName, err)
		}
		cfg.Adyen.HMACKey = secret.Value
	}

	if cfg.Adyen.APIKey == "" {
		return fmt.Errorf("adyen API key is not configured")
	}
	if cfg.Webhook.ValidateHMAC && cfg.Adyen.HMACKey == "" {
		return fmt.Errorf("HMAC validation is enabled but no HMAC key is configured")
	}

	logger.Info("Credentials resolved", zap.String("backend", cfg.Secrets.Backend))
	return nil
}
