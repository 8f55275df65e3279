package smtpcreds

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/gaborage/go-bricks/logger"
)

// AWSConfig configures the Secrets Manager-backed credential source.
type AWSConfig struct {
	SecretName  string        `json:"secret_name" koanf:"custom.aws.smtp.secret.name"`
	CacheTTL    time.Duration `json:"cache_ttl" koanf:"custom.aws.smtp.cache.ttl"`
	EndpointURL string        `json:"endpoint_url" koanf:"custom.aws.endpoint.url"`
}

// SecretsManagerAPI defines the AWS Secrets Manager operations used here.
// This allows for easy mocking and testing.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSource resolves SMTP credentials from AWS Secrets Manager with a TTL
// cache in front of the API.
type AWSSource struct {
	client     SecretsManagerAPI
	cache      *cache
	secretName string
	logger     logger.Logger
}

// NewAWSSource creates a Secrets Manager-backed credential source.
func NewAWSSource(ctx context.Context, log logger.Logger, cfg AWSConfig) (*AWSSource, error) {
	if cfg.SecretName == "" {
		return nil, fmt.Errorf("SMTP secret name cannot be empty")
	}

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	ttl := 5 * time.Minute
	if cfg.CacheTTL > 0 {
		ttl = cfg.CacheTTL
	}

	log.Info().
		Str("secret_name", cfg.SecretName).
		Dur("cache_ttl", ttl).
		Msg("Initializing AWS Secrets Manager SMTP credential source")

	return &AWSSource{
		client:     secretsmanager.NewFromConfig(awsCfg),
		cache:      newCache(ttl),
		secretName: cfg.SecretName,
		logger:     log,
	}, nil
}

// NewAWSSourceWithClient creates a source over an existing client, used by
// tests to inject a mock API.
func NewAWSSourceWithClient(client SecretsManagerAPI, log logger.Logger, secretName string, ttl time.Duration) *AWSSource {
	return &AWSSource{
		client:     client,
		cache:      newCache(ttl),
		secretName: secretName,
		logger:     log,
	}
}

// Credentials implements Source. It serves from the cache when possible
// and falls back to Secrets Manager.
func (s *AWSSource) Credentials(ctx context.Context) (*Credentials, error) {
	if cached := s.cache.get(s.secretName); cached != nil {
		s.logger.Debug().
			Str("secret_name", s.secretName).
			Msg("Retrieved SMTP credentials from cache")
		return cached, nil
	}

	s.logger.Debug().
		Str("secret_name", s.secretName).
		Msg("Cache miss - fetching SMTP credentials from AWS Secrets Manager")

	creds, err := s.fetch(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("secret_name", s.secretName).
			Msg("Failed to fetch SMTP credentials")
		return nil, err
	}

	s.cache.set(s.secretName, creds)
	return creds, nil
}

func (s *AWSSource) fetch(ctx context.Context) (*Credentials, error) {
	result, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve SMTP secret %s: %w", s.secretName, err)
	}
	if result.SecretString == nil {
		return nil, fmt.Errorf("SMTP secret %s has no string value", s.secretName)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse SMTP secret %s: %w", s.secretName, err)
	}
	if creds.Host == "" {
		return nil, fmt.Errorf("SMTP secret %s is missing a host", s.secretName)
	}

	return &creds, nil
}

// InvalidateCache drops the cached credential set.
func (s *AWSSource) InvalidateCache() {
	s.cache.clear()
	s.logger.Debug().Msg("Invalidated SMTP credential cache")
}

// CacheMetrics returns current cache performance metrics.
func (s *AWSSource) CacheMetrics() CacheMetrics {
	return s.cache.snapshot()
}

func loadAWSConfig(ctx context.Context, cfg AWSConfig) (aws.Config, error) {
	result, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return result, err
	}

	// Support LocalStack or other custom endpoints
	if cfg.EndpointURL != "" {
		result.BaseEndpoint = aws.String(cfg.EndpointURL)
	}

	return result, nil
}
