package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration, resolved once at process start
// from an optional yaml file and environment overrides, and passed explicitly
// into every component that needs it.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"15s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Ingest configures the scan ingestion boundary.
	Ingest struct {
		// Token is the shared secret required on POST /scan.
		Token string `env:"INGEST_TOKEN" env-default:"changeme" yaml:"token"`
		// DeviceTokenSecret signs and verifies per-device ingest JWTs. When
		// empty, only the static token is accepted.
		DeviceTokenSecret string `env:"INGEST_DEVICE_TOKEN_SECRET" yaml:"deviceTokenSecret"`
		// RecentLimit caps the number of scan events returned by GET /recent.
		RecentLimit uint `env:"INGEST_RECENT_LIMIT" env-default:"200" yaml:"recentLimit"`
		// DedupeWindow is how long a code is considered a recent duplicate.
		DedupeWindow time.Duration `env:"INGEST_DEDUPE_WINDOW" env-default:"3s" yaml:"dedupeWindow"`
		// DedupeCapacity bounds the cooldown memory; oldest entries are evicted past it.
		DedupeCapacity int `env:"INGEST_DEDUPE_CAPACITY" env-default:"1000" yaml:"dedupeCapacity"`
	} `yaml:"ingest"`

	// Picnic configures the grocery catalog client and its session.
	Picnic struct {
		// Enabled toggles cart synchronization; it is implied by AuthKey or
		// a username/password pair being present.
		Enabled bool `env:"PICNIC_ENABLED" yaml:"enabled"`
		// CountryCode selects the regional storefront (e.g. "NL", "DE").
		CountryCode string `env:"PICNIC_COUNTRY_CODE" env-default:"NL" yaml:"countryCode"`
		// BaseURL overrides the derived storefront API base URL.
		BaseURL string `env:"PICNIC_API_URL" yaml:"baseURL"`
		// AuthKey is a pre-existing session credential; when set no login is needed.
		AuthKey string `env:"PICNIC_AUTH_KEY" yaml:"authKey"`
		// Username for the lazy login exchange.
		Username string `env:"PICNIC_USER" yaml:"username"`
		// Password for the lazy login exchange.
		Password string `env:"PICNIC_PASSWORD" yaml:"password"`
	} `yaml:"picnic"`

	// Tasks configures the optional Google Tasks mirror of ingested scans.
	Tasks struct {
		// ClientID and ClientSecret identify the OAuth application.
		ClientID     string `env:"TASKS_CLIENT_ID" yaml:"clientID"`
		ClientSecret string `env:"TASKS_CLIENT_SECRET" yaml:"clientSecret"`
		// RefreshToken grants offline access to the Tasks API.
		RefreshToken string `env:"TASKS_REFRESH_TOKEN" yaml:"refreshToken"`
		// TasklistID preselects the task list; empty means first available.
		TasklistID string `env:"TASKLIST_ID" yaml:"tasklistID"`
		// TasklistTitle is the fallback display title for the active list.
		TasklistTitle string `env:"TASKLIST_TITLE" env-default:"Tasks" yaml:"tasklistTitle"`
	} `yaml:"tasks"`

	// Capture configures the capture loop client (cartscan capture).
	Capture struct {
		// StreamURL is the MJPEG video stream to decode frames from.
		StreamURL string `env:"CAPTURE_STREAM_URL" yaml:"streamURL"`
		// IngestURL is the base URL of the ingestion server.
		IngestURL string `env:"CAPTURE_INGEST_URL" env-default:"http://localhost:8080" yaml:"ingestURL"`
		// Token is sent with each scan submission.
		Token string `env:"CAPTURE_TOKEN" yaml:"token"`
		// TickInterval is the pause between decode attempts.
		TickInterval time.Duration `env:"CAPTURE_TICK_INTERVAL" env-default:"200ms" yaml:"tickInterval"`
		// MaxInFlight bounds concurrent scan submissions.
		MaxInFlight int `env:"CAPTURE_MAX_IN_FLIGHT" env-default:"1" yaml:"maxInFlight"`
		// SeenTTL is how long a decoded code stays deduplicated.
		SeenTTL time.Duration `env:"CAPTURE_SEEN_TTL" env-default:"1m" yaml:"seenTTL"`
		// SeenCapacity bounds the dedupe set; oldest entries are evicted past it.
		SeenCapacity int `env:"CAPTURE_SEEN_CAPACITY" env-default:"512" yaml:"seenCapacity"`
	} `yaml:"capture"`

	// Worker configures the background cart-sync workers.
	Worker struct {
		// MaxWorkers bounds how many cart syncs run concurrently.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"2" yaml:"maxWorkers"`
		// MaxAttempts is the maximum number of sync attempts per scan.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// SyncWindow is the uniqueness window for cart-sync jobs per code.
		SyncWindow time.Duration `env:"WORKER_SYNC_WINDOW" env-default:"1m" yaml:"syncWindow"`
	} `yaml:"worker"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"cartscan" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// PicnicEnabled reports whether cart synchronization should run: either the
// explicit flag is set, or credentials are present that make it possible.
func (c *Config) PicnicEnabled() bool {
	return c.Picnic.Enabled ||
		c.Picnic.AuthKey != "" ||
		(c.Picnic.Username != "" && c.Picnic.Password != "")
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
