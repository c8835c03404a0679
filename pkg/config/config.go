package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Redis       RedisConfig
	Bedrock     BedrockConfig
	Rekognition RekognitionConfig
	Cache       CacheConfig
	OTEL        OTELConfig
	Env         string
	DemoMode    bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// BedrockConfig holds the text-completion model configuration
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	MaxAttempts int
	// TimeoutSeconds bounds a single Converse attempt
	TimeoutSeconds int
	RateLimitRPM   int
	RateLimitBurst int
}

// RekognitionConfig holds the label-detection configuration
type RekognitionConfig struct {
	Region string
	// MaxLabels caps the number of labels requested per image
	MaxLabels int
	// MinConfidence is the label confidence floor in percent (0-100)
	MinConfidence  float64
	MaxAttempts    int
	TimeoutSeconds int
}

// CacheConfig holds offline Q&A cache configuration
type CacheConfig struct {
	MaxItems   int
	MaxAgeDays int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Bedrock: BedrockConfig{
			Region:         getEnv("AWS_BEDROCK_REGION", "ap-south-1"),
			ModelID:        getEnv("BEDROCK_MODEL_ID", "apac.amazon.nova-lite-v1:0"),
			MaxTokens:      getEnvAsInt("MAX_TOKENS", 500),
			MaxAttempts:    getEnvAsInt("BEDROCK_MAX_ATTEMPTS", 3),
			TimeoutSeconds: getEnvAsInt("BEDROCK_TIMEOUT_SECONDS", 15),
			RateLimitRPM:   getEnvAsInt("BEDROCK_RATE_LIMIT_RPM", 60),
			RateLimitBurst: getEnvAsInt("BEDROCK_RATE_LIMIT_BURST", 5),
		},
		Rekognition: RekognitionConfig{
			Region:         getEnv("AWS_REKOGNITION_REGION", "ap-south-1"),
			MaxLabels:      getEnvAsInt("MAX_LABELS", 20),
			MinConfidence:  getEnvAsFloat("MIN_CONFIDENCE", 60),
			MaxAttempts:    getEnvAsInt("REKOGNITION_MAX_ATTEMPTS", 2),
			TimeoutSeconds: getEnvAsInt("REKOGNITION_TIMEOUT_SECONDS", 20),
		},
		Cache: CacheConfig{
			MaxItems:   getEnvAsInt("QA_CACHE_MAX_ITEMS", 50),
			MaxAgeDays: getEnvAsInt("QA_CACHE_MAX_AGE_DAYS", 30),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "krishirakshak-backend"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Env:      getEnv("APP_ENV", "development"),
		DemoMode: getEnvAsBool("DEMO_MODE", false),
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
