package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Mail      MailConfig
	Admin     AdminConfig
	Loans     LoansConfig
	Queries   QueriesConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration. Timeouts are in seconds.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer/consumer configuration.
// An empty Address disables event publishing.
type NSQConfig struct {
	Address             string
	LookupdAddresses    []string
	LoanDecidedTopic    string
	QueryRespondedTopic string
	Channel             string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig controls one-time code issuance
type OTPConfig struct {
	Lifetime  time.Duration
	Retention time.Duration // how long an expired record is kept so it reports as expired
}

// MailConfig contains the mail relay configuration
type MailConfig struct {
	Driver   string // "smtp" or "log"
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// AdminConfig holds the bootstrap administrator credentials
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

// LoansConfig contains loan lifecycle settings
type LoansConfig struct {
	StrictDecisions bool // only pending loans may be decided
}

// QueriesConfig contains query/response settings
type QueriesConfig struct {
	StrictResponses bool // a query may be answered only once
}

// RateLimitConfig limits requests to the public auth endpoints
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
