package smtpcreds

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/gaborage/go-bricks/logger"
)

type mockSecretsAPI struct {
	getSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	calls              int
}

func (m *mockSecretsAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	m.calls++
	return m.getSecretValueFunc(ctx, params, optFns...)
}

func secretOutput(value string) *secretsmanager.GetSecretValueOutput {
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}
}

func TestCredentialsFetchAndCache(t *testing.T) {
	mock := &mockSecretsAPI{
		getSecretValueFunc: func(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return secretOutput(`{"host":"smtp.lnsc.ph","port":587,"username":"mailer","password":"s3cret","from":"LNSC <noreply@lnsc.ph>"}`), nil
		},
	}
	source := NewAWSSourceWithClient(mock, logger.New("info", false), "prod/smtp", time.Minute)

	creds, err := source.Credentials(context.Background())
	if err != nil {
		t.Fatalf("Credentials error: %v", err)
	}
	if creds.Host != "smtp.lnsc.ph" || creds.Port != 587 {
		t.Errorf("creds = %+v, want smtp.lnsc.ph:587", creds)
	}

	if _, err := source.Credentials(context.Background()); err != nil {
		t.Fatalf("second Credentials error: %v", err)
	}
	if mock.calls != 1 {
		t.Errorf("API calls = %d, want 1 (second read should hit cache)", mock.calls)
	}

	metrics := source.CacheMetrics()
	if metrics.Hits != 1 || metrics.Misses != 1 {
		t.Errorf("cache metrics = %+v, want 1 hit / 1 miss", metrics)
	}
}

func TestCredentialsInvalidateForcesRefetch(t *testing.T) {
	mock := &mockSecretsAPI{
		getSecretValueFunc: func(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return secretOutput(`{"host":"smtp.lnsc.ph","port":587}`), nil
		},
	}
	source := NewAWSSourceWithClient(mock, logger.New("info", false), "prod/smtp", time.Minute)

	if _, err := source.Credentials(context.Background()); err != nil {
		t.Fatalf("Credentials error: %v", err)
	}
	source.InvalidateCache()
	if _, err := source.Credentials(context.Background()); err != nil {
		t.Fatalf("Credentials error after invalidate: %v", err)
	}

	if mock.calls != 2 {
		t.Errorf("API calls = %d, want 2", mock.calls)
	}
}

func TestCredentialsErrors(t *testing.T) {
	tests := []struct {
		name   string
		output *secretsmanager.GetSecretValueOutput
		err    error
	}{
		{
			name: "api failure",
			err:  fmt.Errorf("access denied"),
		},
		{
			name:   "empty secret",
			output: &secretsmanager.GetSecretValueOutput{},
		},
		{
			name:   "malformed json",
			output: secretOutput("not-json"),
		},
		{
			name:   "missing host",
			output: secretOutput(`{"port":587}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockSecretsAPI{
				getSecretValueFunc: func(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
					return tt.output, tt.err
				},
			}
			source := NewAWSSourceWithClient(mock, logger.New("info", false), "prod/smtp", time.Minute)

			if _, err := source.Credentials(context.Background()); err == nil {
				t.Error("Credentials error = nil, want error")
			}
		})
	}
}

func TestStaticSourceDefaults(t *testing.T) {
	source := NewStaticSource(nil)

	creds, err := source.Credentials(context.Background())
	if err != nil {
		t.Fatalf("Credentials error: %v", err)
	}
	if creds.Host == "" {
		t.Error("default static source has empty host")
	}
}
