package models

// Config is the root configuration for the openride service
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	RateLimit RateLimitConfig
	Pricing   PricingConfig
	WebSocket WebSocketConfig
}

// AppConfig contains application metadata
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ broker settings
type NSQConfig struct {
	Address      string
	LookupdAddrs []string
	MaxInFlight  int
}

// JWTConfig contains JWT validation settings
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// RateLimitConfig contains request rate limiting settings
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  int // seconds
}

// PricingConfig contains fare and surge settings
type PricingConfig struct {
	RatePerKM     float64
	SurgeWindowMS int64 // sliding activity window for surge counters, milliseconds
}

// WebSocketConfig contains notification hub settings
type WebSocketConfig struct {
	BufferSize int
}
