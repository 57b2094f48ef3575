package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultTimezone       = "Europe/Amsterdam"
	defaultTickSpec       = "* * * * *"
	defaultPageSize       = 200
	defaultWorkers        = 4
	defaultRunTimeout     = 50 * time.Second
	defaultLockTTL        = 55 * time.Second
	defaultPushUrgency    = "high"
	defaultRedisKeyPrefix = "reminder:"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres is optional; without it delivery logs are discarded.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis is optional; without it the fan-out run lock is process local.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	Push *PushConfig `json:"push" yaml:"push"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project backing Firestore, FCM and Auth
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RedisConfig defines the Redis instance holding the fan-out run lock
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SchedulerConfig defines how reminders are evaluated and fanned out
type SchedulerConfig struct {
	// IANA zone every cron expression is evaluated in
	Timezone string `json:"timezone" yaml:"timezone"`

	// Embedded runs the minute ticker in-process instead of relying on an external scheduler
	Embedded bool `json:"embedded" yaml:"embedded"`

	// TickSpec is the cron spec of the embedded ticker
	TickSpec string `json:"tickSpec" yaml:"tickSpec"`

	PageSize   int           `json:"pageSize" yaml:"pageSize"`
	Workers    int           `json:"workers" yaml:"workers"`
	RunTimeout time.Duration `json:"runTimeout" yaml:"runTimeout"`
	LockTTL    time.Duration `json:"lockTTL" yaml:"lockTTL"`
}

// Location resolves the configured timezone.
func (c *SchedulerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load scheduler timezone %q", c.Timezone)
	}

	return loc, nil
}

// PushConfig defines how notifications are rendered and delivered
type PushConfig struct {
	// AppBaseURL is the web app origin used for notification deep links
	AppBaseURL string `json:"appBaseUrl" yaml:"appBaseUrl"`

	// PruneInvalidTokens removes devices whose tokens FCM reports as unregistered or as an invalid registration token
	PruneInvalidTokens bool `json:"pruneInvalidTokens" yaml:"pruneInvalidTokens"`

	// Urgency is the webpush Urgency header
	Urgency string `json:"urgency" yaml:"urgency"`
}

// AuthConfig defines how inbound callers are authenticated
type AuthConfig struct {
	// VerifyServiceTokens enables OIDC verification for scheduler, Eventarc and Pub/Sub push requests
	VerifyServiceTokens bool `json:"verifyServiceTokens" yaml:"verifyServiceTokens"`

	// ServiceAccountEmails restricts accepted OIDC tokens to these principals when non-empty
	ServiceAccountEmails []string `json:"serviceAccountEmails" yaml:"serviceAccountEmails"`

	// Audience overrides the expected OIDC audience; defaults to the request URL
	Audience string `json:"audience" yaml:"audience"`

	// RequireCallerToken enforces Firebase ID tokens on callable endpoints
	RequireCallerToken bool `json:"requireCallerToken" yaml:"requireCallerToken"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SCHEDULER_PAGESIZE -> scheduler.pageSize
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	if _, err := cfg.Scheduler.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
	if cfg.Scheduler.Timezone == "" {
		cfg.Scheduler.Timezone = defaultTimezone
	}
	if cfg.Scheduler.TickSpec == "" {
		cfg.Scheduler.TickSpec = defaultTickSpec
	}
	if cfg.Scheduler.PageSize <= 0 {
		cfg.Scheduler.PageSize = defaultPageSize
	}
	if cfg.Scheduler.Workers <= 0 {
		cfg.Scheduler.Workers = defaultWorkers
	}
	if cfg.Scheduler.RunTimeout <= 0 {
		cfg.Scheduler.RunTimeout = defaultRunTimeout
	}
	if cfg.Scheduler.LockTTL <= 0 {
		cfg.Scheduler.LockTTL = defaultLockTTL
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.Urgency == "" {
		cfg.Push.Urgency = defaultPushUrgency
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Redis != nil && cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = defaultRedisKeyPrefix
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
