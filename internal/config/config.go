package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, the API client used by the
// CLI, the HTTP server, database connection, mail delivery, payslip processing,
// background workers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log configures the optional rotating log file
	Log struct {
		// FilePath enables a JSON log file next to the console output when set
		FilePath string `env:"LOG_FILE_PATH" env-default:"" yaml:"filePath"`
		// MaxSizeMB is the size at which the log file is rotated
		MaxSizeMB int `env:"LOG_MAX_SIZE_MB" env-default:"10" yaml:"maxSizeMB"`
		// MaxBackups is the number of rotated files kept
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"5" yaml:"maxBackups"`
		// MaxAgeDays is the number of days rotated files are kept
		MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" env-default:"30" yaml:"maxAgeDays"`
	} `yaml:"log"`

	// API configures the client used by the send and reprocess commands
	API struct {
		// BaseURL is the payslip service address
		BaseURL string `env:"API_BASE_URL" env-default:"http://localhost:3000" yaml:"baseURL"`
		// Token is sent as a bearer token when set
		Token string `env:"API_TOKEN" env-default:"" yaml:"token"`
		// Timeout bounds every request of the client
		Timeout time.Duration `env:"API_TIMEOUT" env-default:"5m" yaml:"timeout"`
	} `yaml:"api"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":3000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"5m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// Docs serves the OpenAPI document and the Swagger UI
		Docs bool `env:"HTTP_DOCS" env-default:"true" yaml:"docs"`
		// Pprof mounts the profiling endpoints under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"http"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"holerite" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT configures bearer token auth of the API
	JWT struct {
		// PublicKey verifies tokens; auth is disabled when empty
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey signs tokens in the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Mail configures the e-mail provider
	Mail struct {
		// Provider is either "sendgrid" or "log"
		Provider string `env:"MAIL_PROVIDER" env-default:"log" yaml:"provider"`
		// FromEmail is the sender address
		FromEmail string `env:"MAIL_FROM_EMAIL" env-default:"rh@example.com" yaml:"fromEmail"`
		// FromName is the sender display name
		FromName string `env:"MAIL_FROM_NAME" env-default:"Recursos Humanos" yaml:"fromName"`
		// SendGridAPIKey authenticates against SendGrid
		SendGridAPIKey string `env:"SENDGRID_API_KEY" env-default:"" yaml:"sendgridApiKey"`
		// SendGridSandbox validates messages without delivering them
		SendGridSandbox bool `env:"SENDGRID_SANDBOX" env-default:"false" yaml:"sendgridSandbox"`
	} `yaml:"mail"`

	// Payslip configures how payslips are planned and queued
	Payslip struct {
		// DefaultSubject is used when a request carries no subject
		DefaultSubject string `env:"PAYSLIP_DEFAULT_SUBJECT" env-default:"Holerite" yaml:"defaultSubject"`
		// DefaultMessage is used when a request carries no message
		DefaultMessage string `env:"PAYSLIP_DEFAULT_MESSAGE" env-default:"Olá {{nome}}, segue seu holerite da {{unidade}}." yaml:"defaultMessage"` //nolint: lll
		// DefaultBatchSize is the number of e-mails released per batch
		DefaultBatchSize int `env:"PAYSLIP_DEFAULT_BATCH_SIZE" env-default:"50" yaml:"defaultBatchSize"`
		// BatchInterval separates the release of consecutive batches
		BatchInterval time.Duration `env:"PAYSLIP_BATCH_INTERVAL" env-default:"1m" yaml:"batchInterval"`
		// AllowedDomains restricts recipients to these e-mail domains; empty allows all
		AllowedDomains []string `env:"PAYSLIP_ALLOWED_DOMAINS" env-separator:"," yaml:"allowedDomains"`
		// StrictPDF rejects uploads that are not PDFs instead of skipping every recipient
		StrictPDF bool `env:"PAYSLIP_STRICT_PDF" env-default:"true" yaml:"strictPDF"`
		// StrictEmail rejects a unidade that has colaboradores without a valid e-mail
		StrictEmail bool `env:"PAYSLIP_STRICT_EMAIL" env-default:"false" yaml:"strictEmail"`
		// MaxUploadBytes caps the size of an uploaded PDF
		MaxUploadBytes int64 `env:"PAYSLIP_MAX_UPLOAD_BYTES" env-default:"52428800" yaml:"maxUploadBytes"`
		// MaxAttempts is how many times a delivery job is attempted
		MaxAttempts int `env:"PAYSLIP_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// ConfirmThreshold is the unidade size above which a real send needs confirm=YES; zero always asks
		ConfirmThreshold int `env:"PAYSLIP_CONFIRM_THRESHOLD" env-default:"50" yaml:"confirmThreshold"`
	} `yaml:"payslip"`

	// Worker configures the background delivery workers
	Worker struct {
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// SendRate caps deliveries per second across all workers; zero disables the cap
		SendRate float64 `env:"WORKER_SEND_RATE" env-default:"10" yaml:"sendRate"`
		// RateLimitSnooze delays a job when the mail provider throttles
		RateLimitSnooze time.Duration `env:"WORKER_RATE_LIMIT_SNOOZE" env-default:"1m" yaml:"rateLimitSnooze"`
		// ReprocessSchedule is a cron spec for retrying failed notifications; empty disables it
		ReprocessSchedule string `env:"WORKER_REPROCESS_SCHEDULE" env-default:"" yaml:"reprocessSchedule"`
		// ReprocessLimit caps how many failed notifications one scheduled run retries
		ReprocessLimit int `env:"WORKER_REPROCESS_LIMIT" env-default:"200" yaml:"reprocessLimit"`
		// ReprocessMaxRetryCount skips notifications retried this many times
		ReprocessMaxRetryCount int `env:"WORKER_REPROCESS_MAX_RETRY_COUNT" env-default:"5" yaml:"reprocessMaxRetryCount"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: defaults and environment variables are used.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if _, statErr := os.Stat(configPath); statErr != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
