package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	App         AppConfig      `mapstructure:"app"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// Token verification modes
const (
	AuthModeJWT    = "jwt"
	AuthModeRemote = "remote"
)

// AuthConfig contains token verification settings
type AuthConfig struct {
	// Mode selects how bearer tokens are verified: "jwt" validates locally
	// with JWTSecret, "remote" asks the provider at ProviderURL.
	Mode           string        `mapstructure:"mode"`
	JWTSecret      string        `mapstructure:"jwtSecret"`
	ProviderURL    string        `mapstructure:"providerUrl"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
}

// AppConfig contains the reward program settings
type AppConfig struct {
	Timezone              string  `mapstructure:"timezone"`
	CheckinRadiusMeters   float64 `mapstructure:"checkinRadiusMeters"`
	LeaderboardSize       int     `mapstructure:"leaderboardSize"`
	RedemptionHistorySize int     `mapstructure:"redemptionHistorySize"`
	SeedCatalog           bool    `mapstructure:"seedCatalog"`
}
