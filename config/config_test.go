package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, defaultDatabase, cfg.Mongo.Database)
	assert.Equal(t, defaultOperationTimeout, cfg.Mongo.OperationTimeout)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultBatchSize, cfg.Outbox.BatchSize)
	assert.Equal(t, defaultMaxAttempts, cfg.Outbox.MaxAttempts)
	assert.Equal(t, defaultLease, cfg.Outbox.Lease)
	assert.Equal(t, defaultLocale, cfg.Notification.Locale)
	assert.Equal(t, "open", cfg.Badges.NonParticipantPolicy)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Outbox: &OutboxConfig{BatchSize: 5, PollInterval: 250 * time.Millisecond},
		Badges: &BadgesConfig{NonParticipantPolicy: "registered"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 5, cfg.Outbox.BatchSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Outbox.PollInterval)
	assert.Equal(t, "registered", cfg.Badges.NonParticipantPolicy)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte("mongo:\n  uri: mongodb://yaml:27017\n  operationTimeout: 5s\noutbox:\n  batchSize: 10\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlContent, 0o600))
	t.Chdir(dir)

	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("OUTBOX_BATCHSIZE", "25")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://env:27017", cfg.Mongo.URI)
	assert.Equal(t, 5*time.Second, cfg.Mongo.OperationTimeout)
	assert.Equal(t, 25, cfg.Outbox.BatchSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestValidate(t *testing.T) {
	newConfig := func(mutate func(*Config)) *Config {
		cfg := &Config{}
		mutate(cfg)
		applyDefaults(cfg)

		return cfg
	}

	assert.NoError(t, validate(newConfig(func(*Config) {})))
	assert.NoError(t, validate(newConfig(func(c *Config) {
		c.PubSub = &PubSubConfig{Provider: "memory"}
		c.Outbox = &OutboxConfig{Embedded: true}
	})))

	assert.ErrorContains(t, validate(newConfig(func(c *Config) {
		c.PubSub = &PubSubConfig{Provider: "memory"}
	})), "outbox.embedded")
	assert.ErrorContains(t, validate(newConfig(func(c *Config) {
		c.Badges = &BadgesConfig{NonParticipantPolicy: "everyone"}
	})), "nonParticipantPolicy")
}
