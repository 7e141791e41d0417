// Package config loads the service configuration from config.yaml and
// environment variables.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"eventhub/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDatabase           = "eventhub"
	defaultOperationTimeout   = 5 * time.Second
	defaultBcryptCost         = 12
	defaultPollInterval       = time.Second
	defaultBatchSize          = 50
	defaultConcurrency        = 8
	defaultMaxAttempts        = 10
	defaultLease              = 30 * time.Second
	defaultBaseBackoff        = 2 * time.Second
	defaultMaxBackoff         = 5 * time.Minute
	defaultPublishRetries     = 3
	defaultLocale             = "en_US"
	defaultDateFormat         = "%a %d %b %Y, %H:%M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`

		Timeouts TimeoutsConfig `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Mongo configuration for the document store
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Outbox configuration for the relay draining domain events
	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for check-in QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Notification configuration for in-app notification texts
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	Badges *BadgesConfig `json:"badges" yaml:"badges"`

	// Telemetry configuration for tracing
	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

// TimeoutsConfig bounds the phases of an HTTP exchange.
type TimeoutsConfig struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI              string        `json:"uri" yaml:"uri"`
	Database         string        `json:"database" yaml:"database"`
	ConnectTimeout   time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
	MaxPoolSize      uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`

	// Transactions requires a replica set. When false, outbox records are
	// written right after the entity instead of atomically with it.
	Transactions bool `json:"transactions" yaml:"transactions"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Secret shared with the identity provider for HS256 tokens
	Secret      string        `json:"secret" yaml:"secret"`
	Issuer      string        `json:"issuer" yaml:"issuer"`
	BcryptCost  int           `json:"bcryptCost" yaml:"bcryptCost"`
	DevTokenTTL time.Duration `json:"devTokenTtl" yaml:"devTokenTtl"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// OutboxConfig defines how the relay drains the outbox
type OutboxConfig struct {
	// Embedded runs the relay and the pull subscriber inside the API process
	Embedded       bool          `json:"embedded" yaml:"embedded"`
	PollInterval   time.Duration `json:"pollInterval" yaml:"pollInterval"`
	BatchSize      int           `json:"batchSize" yaml:"batchSize"`
	Concurrency    int           `json:"concurrency" yaml:"concurrency"`
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	Lease          time.Duration `json:"lease" yaml:"lease"`
	BaseBackoff    time.Duration `json:"baseBackoff" yaml:"baseBackoff"`
	MaxBackoff     time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
	PublishRetries int           `json:"publishRetries" yaml:"publishRetries"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "memory", "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RabbitMQ connection (for rabbitmq provider)
	RabbitMQ RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`
}

// RabbitMQConfig defines the topic exchange domain events flow through
type RabbitMQConfig struct {
	URL      string `json:"url" yaml:"url"`
	Exchange string `json:"exchange" yaml:"exchange"`
	Queue    string `json:"queue" yaml:"queue"`
	Prefetch int    `json:"prefetch" yaml:"prefetch"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// NotificationConfig defines how notification texts are rendered
type NotificationConfig struct {
	Locale     string `json:"locale" yaml:"locale"`
	DateFormat string `json:"dateFormat" yaml:"dateFormat"`
	TimeZone   string `json:"timeZone" yaml:"timeZone"`
}

// BadgesConfig defines the claim policy of non-participant badges
type BadgesConfig struct {
	// NonParticipantPolicy is "open" (anyone may claim once) or
	// "registered" (caller must be registered for the badge's event)
	NonParticipantPolicy string `json:"nonParticipantPolicy" yaml:"nonParticipantPolicy"`
}

// TelemetryConfig defines the OTLP trace exporter
type TelemetryConfig struct {
	Enabled     bool    `json:"enabled" yaml:"enabled"`
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	Insecure    bool    `json:"insecure" yaml:"insecure"`
	SampleRatio float64 `json:"sampleRatio" yaml:"sampleRatio"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// A .env file is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env file failed")
	}

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: OUTBOX_BATCHSIZE -> outbox.batchSize (not outbox.batchsize)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects combinations that load fine but cannot work.
func validate(cfg *Config) error {
	if cfg.PubSub != nil && cfg.PubSub.Provider == "memory" && !cfg.Outbox.Embedded {
		return errors.New("pubsub provider memory only reaches consumers in the same process, set outbox.embedded")
	}
	switch cfg.Badges.NonParticipantPolicy {
	case "open", "registered":
	default:
		return errors.Errorf("unknown badges.nonParticipantPolicy %q", cfg.Badges.NonParticipantPolicy)
	}

	return nil
}

// applyDefaults fills the optional values a config file may leave out.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultDatabase
	}
	if cfg.Mongo.OperationTimeout <= 0 {
		cfg.Mongo.OperationTimeout = defaultOperationTimeout
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	if cfg.Outbox == nil {
		cfg.Outbox = &OutboxConfig{}
	}
	setDefault(&cfg.Outbox.PollInterval, defaultPollInterval)
	setDefault(&cfg.Outbox.BatchSize, defaultBatchSize)
	setDefault(&cfg.Outbox.Concurrency, defaultConcurrency)
	setDefault(&cfg.Outbox.MaxAttempts, defaultMaxAttempts)
	setDefault(&cfg.Outbox.Lease, defaultLease)
	setDefault(&cfg.Outbox.BaseBackoff, defaultBaseBackoff)
	setDefault(&cfg.Outbox.MaxBackoff, defaultMaxBackoff)
	setDefault(&cfg.Outbox.PublishRetries, defaultPublishRetries)

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Locale == "" {
		cfg.Notification.Locale = defaultLocale
	}
	if cfg.Notification.DateFormat == "" {
		cfg.Notification.DateFormat = defaultDateFormat
	}

	if cfg.Badges == nil {
		cfg.Badges = &BadgesConfig{}
	}
	if cfg.Badges.NonParticipantPolicy == "" {
		cfg.Badges.NonParticipantPolicy = "open"
	}
}

func setDefault[T int | time.Duration](field *T, value T) {
	if *field <= 0 {
		*field = value
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
