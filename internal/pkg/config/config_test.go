package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DASHBOARD_CACHE_TTL", "90s")
	t.Setenv("ASYNQ_QUEUES", "critical:6, default:3,bogus")

	cfg, err := Load(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "canteen-api", cfg.App.Name)
	assert.Equal(t, "canteen", cfg.Database.Name)
	assert.Equal(t, 90*time.Second, cfg.Business.DashboardCacheTTL)
	assert.Equal(t, "UTC", cfg.Business.DefaultTimezone)
	assert.Equal(t, map[string]int{"critical": 6, "default": 3}, cfg.Asynq.Queues)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.False(t, cfg.IsProduction())
}

func TestBasicValidator(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Name: "canteen-api", SecretsProvider: "env"},
			Database: DatabaseConfig{Host: "db", Name: "canteen", MaxConnections: 10, MinConnections: 2},
			Redis:    RedisConfig{PoolSize: 5},
			Security: SecurityConfig{RateLimitRequests: 10},
			Server:   ServerConfig{Port: "8080"},
			Business: BusinessConfig{DashboardCacheTTL: time.Minute, PurgeRetention: 48 * time.Hour, DefaultTimezone: "Asia/Kolkata"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid_config", mutate: func(*Config) {}},
		{name: "missing_db_host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: "Database.Host"},
		{name: "placeholder_port", mutate: func(c *Config) { c.Server.Port = "MISSING_PORT" }, wantErr: "Server.Port"},
		{name: "pool_bounds_inverted", mutate: func(c *Config) { c.Database.MinConnections = 20 }, wantErr: "max_connections"},
		{name: "bad_timezone", mutate: func(c *Config) { c.Business.DefaultTimezone = "Mars/Olympus" }, wantErr: "timezone"},
		{name: "short_retention", mutate: func(c *Config) { c.Business.PurgeRetention = time.Hour }, wantErr: "retention"},
		{name: "unknown_secrets_provider", mutate: func(c *Config) { c.App.SecretsProvider = "vault" }, wantErr: "secrets provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := (&BasicValidator{}).Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProductionValidator(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "s3cret", SSLMode: "require"},
		Security: SecurityConfig{SecureHeaders: true, AllowedOrigins: []string{"https://canteen.example"}},
	}
	assert.NoError(t, (&ProductionValidator{}).Validate(cfg))

	cfg.Database.Password = "canteen_dev"
	assert.ErrorIs(t, (&ProductionValidator{}).Validate(cfg), ErrMissingRequiredConfig)

	cfg.Database.Password = "s3cret"
	cfg.Security.AllowedOrigins = []string{"*"}
	assert.Error(t, (&ProductionValidator{}).Validate(cfg))
}

type fakeSecretsAPI struct {
	payload string
	err     error
	calls   int
}

func (f *fakeSecretsAPI) GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretString: aws.String(f.payload)}, nil
}

func TestAWSSecretsManager_CachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	api := &fakeSecretsAPI{payload: `{"DB_PASSWORD":"pg","REDIS_PASSWORD":"rd"}`}
	sm := newAWSSecretsManager(api, "canteen/test", discardLogger())

	v, err := sm.GetSecret(ctx, SecretDBPassword)
	require.NoError(t, err)
	assert.Equal(t, "pg", v)

	v, err = sm.GetSecret(ctx, SecretRedisPassword)
	require.NoError(t, err)
	assert.Equal(t, "rd", v)
	assert.Equal(t, 1, api.calls)

	_, err = sm.GetSecret(ctx, "MISSING")
	assert.Error(t, err)

	require.NoError(t, sm.RefreshSecrets(ctx))
	assert.Equal(t, 3, api.calls)
}

func TestAWSSecretsManager_Errors(t *testing.T) {
	ctx := context.Background()

	sm := newAWSSecretsManager(&fakeSecretsAPI{err: errors.New("denied")}, "x", discardLogger())
	_, err := sm.GetSecrets(ctx, []string{SecretDBPassword})
	assert.ErrorContains(t, err, "denied")

	sm = newAWSSecretsManager(&fakeSecretsAPI{payload: "not json"}, "x", discardLogger())
	_, err = sm.GetSecrets(ctx, []string{SecretDBPassword})
	assert.ErrorContains(t, err, "parse")
}

func TestApplySecrets(t *testing.T) {
	ctx := context.Background()
	cfg := &Config{Database: DatabaseConfig{Password: "old"}, Redis: RedisConfig{Password: "old"}}

	api := &fakeSecretsAPI{payload: `{"DB_PASSWORD":"new-pg"}`}
	require.NoError(t, ApplySecrets(ctx, cfg, newAWSSecretsManager(api, "x", discardLogger())))

	assert.Equal(t, "new-pg", cfg.Database.Password)
	assert.Equal(t, "old", cfg.Redis.Password, "keys absent from the secret keep their value")

	t.Setenv(SecretRedisPassword, "env-rd")
	require.NoError(t, ApplySecrets(ctx, cfg, NewEnvSecretsManager()))
	assert.Equal(t, "env-rd", cfg.Redis.Password)
	assert.Equal(t, "env-rd", cfg.Asynq.RedisPassword)
}
