package config

import (
	"log"
	"strings"
	"time"

	"github.com/piresc/loanhub/internal/pkg/constants"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is local
// (the default) the dotenv file at configPath is read first; real environment
// variables always take precedence over it.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "loanhub")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_LOAN_DECIDED_TOPIC", constants.TopicLoanDecided)
	v.SetDefault("NSQ_QUERY_RESPONDED_TOPIC", constants.TopicQueryResponded)
	v.SetDefault("NSQ_CHANNEL", constants.ChannelNotifier)

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "loanhub")

	v.SetDefault("OTP_LIFETIME", "10m")
	v.SetDefault("OTP_RETENTION", "1h")

	v.SetDefault("MAIL_DRIVER", "log")
	v.SetDefault("MAIL_PORT", 587)
	v.SetDefault("MAIL_FROM", "no-reply@loanhub.local")

	v.SetDefault("ADMIN_NAME", "Administrator")

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_LIMIT", 20)
	v.SetDefault("RATE_LIMIT_PERIOD", "1m")

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddresses = splitList(v.GetString("NSQ_LOOKUPD_ADDRESSES"))
	configs.NSQ.LoanDecidedTopic = v.GetString("NSQ_LOAN_DECIDED_TOPIC")
	configs.NSQ.QueryRespondedTopic = v.GetString("NSQ_QUERY_RESPONDED_TOPIC")
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// OTP config
	configs.OTP.Lifetime = getDuration(v, "OTP_LIFETIME", 10*time.Minute)
	configs.OTP.Retention = getDuration(v, "OTP_RETENTION", time.Hour)

	// Mail config
	configs.Mail.Driver = v.GetString("MAIL_DRIVER")
	configs.Mail.Host = v.GetString("MAIL_HOST")
	configs.Mail.Port = v.GetInt("MAIL_PORT")
	configs.Mail.Username = v.GetString("MAIL_USERNAME")
	configs.Mail.Password = v.GetString("MAIL_PASSWORD")
	configs.Mail.From = v.GetString("MAIL_FROM")

	// Admin bootstrap
	configs.Admin.Name = v.GetString("ADMIN_NAME")
	configs.Admin.Email = v.GetString("ADMIN_EMAIL")
	configs.Admin.Password = v.GetString("ADMIN_PASSWORD")

	// Lifecycle modes
	configs.Loans.StrictDecisions = v.GetBool("LOAN_STRICT_DECISIONS")
	configs.Queries.StrictResponses = v.GetBool("QUERY_STRICT_RESPONSES")

	// Rate limit config
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_LIMIT")
	configs.RateLimit.Period = getDuration(v, "RATE_LIMIT_PERIOD", time.Minute)

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func getDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
