package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	SeoulAPI SeoulAPIConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CacheConfig struct {
	// APICacheTTL covers slow-moving facility feeds (elevators, closures,
	// chargers). RealtimeCacheTTL covers train arrivals.
	APICacheTTL      time.Duration
	RealtimeCacheTTL time.Duration
	RouteCacheTTL    time.Duration
	SweepInterval    time.Duration
}

type SeoulAPIConfig struct {
	OpenAPIKey      string
	OpenAPIBaseURL  string
	RealtimeAPIKey  string
	RealtimeBaseURL string
	RequestTimeout  time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// .env is optional; env vars may carry everything
			fmt.Printf("Warning: .env file not found, using environment variables\n")
		}
	}

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetString("SERVER_PORT"),
			Env:          viper.GetString("SERVER_ENV"),
			ReadTimeout:  viper.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: viper.GetDuration("SERVER_WRITE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetString("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			APICacheTTL:      viper.GetDuration("API_CACHE_TTL"),
			RealtimeCacheTTL: viper.GetDuration("REALTIME_CACHE_TTL"),
			RouteCacheTTL:    viper.GetDuration("ROUTE_CACHE_TTL"),
			SweepInterval:    viper.GetDuration("ROUTE_CACHE_SWEEP_INTERVAL"),
		},
		SeoulAPI: SeoulAPIConfig{
			OpenAPIKey:      viper.GetString("SEOUL_OPENAPI_KEY"),
			OpenAPIBaseURL:  viper.GetString("SEOUL_OPENAPI_BASE_URL"),
			RealtimeAPIKey:  viper.GetString("SEOUL_REALTIME_API_KEY"),
			RealtimeBaseURL: viper.GetString("SEOUL_REALTIME_BASE_URL"),
			RequestTimeout:  viper.GetDuration("SEOUL_API_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "15s")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "subway_navigation")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("API_CACHE_TTL", "5m")
	viper.SetDefault("REALTIME_CACHE_TTL", "1m")
	viper.SetDefault("ROUTE_CACHE_TTL", "24h")
	viper.SetDefault("ROUTE_CACHE_SWEEP_INTERVAL", "1h")

	viper.SetDefault("SEOUL_OPENAPI_KEY", "")
	viper.SetDefault("SEOUL_OPENAPI_BASE_URL", "http://openapi.seoul.go.kr:8088")
	viper.SetDefault("SEOUL_REALTIME_API_KEY", "")
	viper.SetDefault("SEOUL_REALTIME_BASE_URL", "http://swopenAPI.seoul.go.kr/api/subway")
	viper.SetDefault("SEOUL_API_TIMEOUT", "5s")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
