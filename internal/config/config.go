package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvDevelopment is the default environment name.
	EnvDevelopment = "development"
	// EnvProduction enables the stricter startup checks.
	EnvProduction = "production"

	defaultJWTSecret = "change-me"
)

// Config holds application level configuration loaded from environment variables.
// It is built once in main and passed by pointer to every component that needs it.
type Config struct {
	ServerPort  string
	AppName     string
	AppVersion  string
	Environment string
	Debug       bool
	LogLevel    string

	DatabaseDriver string
	DatabaseURL    string
	ResetDB        bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret             string
	JWTAlgorithm          string
	AccessTokenTTLMinutes int
	BcryptCost            int

	PhoneRegion string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		AppName:     getEnv("APP_NAME", "Veterinary Clinic Management API"),
		AppVersion:  getEnv("APP_VERSION", "1.0.0"),
		Environment: strings.ToLower(getEnv("ENVIRONMENT", EnvDevelopment)),
		Debug:       getEnvBool("DEBUG", false),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseDriver: strings.ToLower(getEnv("DATABASE_DRIVER", "mysql")),
		DatabaseURL:    getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/veterinaria?charset=utf8mb4&parseTime=True&loc=Local"),
		ResetDB:        getEnvBool("RESET_DB", false),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:             getEnv("JWT_SECRET", defaultJWTSecret),
		JWTAlgorithm:          strings.ToUpper(getEnv("JWT_ALGORITHM", "HS256")),
		AccessTokenTTLMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		BcryptCost:            getEnvInt("BCRYPT_COST", 10),

		PhoneRegion: strings.ToUpper(getEnv("PHONE_REGION", "BR")),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// AccessTokenTTL returns the configured token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("JWT_ALGORITHM %q is not supported", c.JWTAlgorithm))
	}
	if c.AccessTokenTTLMinutes <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive"))
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	switch c.DatabaseDriver {
	case "mysql", "postgres", "memory":
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER %q is not supported", c.DatabaseDriver))
	}
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENVIRONMENT %q is not supported", c.Environment))
	}

	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
