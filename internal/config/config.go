package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	// AutoMigrate applies the embedded schema at startup.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// CacheConfig contains the Redis settings for the task list cache.
type CacheConfig struct {
	Addr       string `mapstructure:"addr"        validate:"required,hostname_port"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"          validate:"gte=0"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"gt=0"`
}
