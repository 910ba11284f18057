package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	APIBasePath string `env:"API_BASE_PATH" envDefault:"/api/v1"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr          string   `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisFallbackAddrs []string `env:"REDIS_FALLBACK_ADDRS" envDefault:"localhost:6379,redis:6379"`
	RedisPass          string   `env:"REDIS_PASSWORD"`
	RedisDB            int      `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTTTL         time.Duration `env:"JWT_TTL" envDefault:"1h"`
	LoginRateLimit float64       `env:"LOGIN_RATE_LIMIT" envDefault:"1"`
	LoginRateBurst int           `env:"LOGIN_RATE_BURST" envDefault:"5"`

	// API Keys for administrative endpoints
	APIKeys []string `env:"API_KEYS"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	// Object storage Config
	S3Endpoint         string        `env:"S3_ENDPOINT" envDefault:"localhost:9000"`
	S3AccessKey        string        `env:"S3_ACCESS_KEY"`
	S3SecretKey        string        `env:"S3_SECRET_KEY"`
	S3UseSSL           bool          `env:"S3_USE_SSL" envDefault:"false"`
	S3Region           string        `env:"S3_REGION" envDefault:"us-east-1"`
	ImageBucket        string        `env:"IMAGE_BUCKET" envDefault:"billion-eyes-images"`
	ImagePublicBaseURL string        `env:"IMAGE_PUBLIC_BASE_URL" envDefault:"http://localhost:9000"`
	ObjectStoreTimeout time.Duration `env:"OBJECT_STORE_TIMEOUT" envDefault:"200ms"`

	// общий предел на скачивание объекта; OBJECT_STORE_TIMEOUT действует только на сокет
	ObjectStoreTransferTimeout time.Duration `env:"OBJECT_STORE_TRANSFER_TIMEOUT" envDefault:"30s"`

	ImageCacheTTL      time.Duration `env:"IMAGE_CACHE_TTL" envDefault:"10m"`
	ImageFetchWorkers  int           `env:"IMAGE_FETCH_CONCURRENCY" envDefault:"8"`
	MaxUploadBytes     int           `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// Model / queue Config
	DefaultActiveModel string            `env:"DEFAULT_ACTIVE_MODEL" envDefault:"YOLO"`
	ModelQueues        map[string]string `env:"MODEL_QUEUES" envDefault:"YOLO=yolo_queue,VLM=vlm_queue"`
	DetectionQueue     string            `env:"DETECTION_QUEUE" envDefault:"detected_objects_queue"`
	WorkerMaxRetries   int               `env:"WORKER_MAX_RETRIES" envDefault:"3"`
	WorkerBaseDelay    time.Duration     `env:"WORKER_BASE_DELAY" envDefault:"1s"`

	// Dispatch Config
	DispatchRadiusMeters  float64       `env:"DISPATCH_RADIUS_METERS" envDefault:"50000"`
	DispatchMaxCandidates int           `env:"DISPATCH_MAX_CANDIDATES" envDefault:"3"`
	DedupWindow           time.Duration `env:"DEDUP_WINDOW" envDefault:"2h"`
	DedupRadiusMeters     float64       `env:"DEDUP_RADIUS_METERS" envDefault:"200"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DBMaxConns:            getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		APIBasePath:           getEnv("API_BASE_PATH", "/api/v1"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisFallbackAddrs:    getEnvAsList("REDIS_FALLBACK_ADDRS", []string{"localhost:6379", "redis:6379"}),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTTTL:                getEnvAsDuration("JWT_TTL", time.Hour),
		LoginRateLimit:        getEnvAsFloat("LOGIN_RATE_LIMIT", 1),
		LoginRateBurst:        getEnvAsInt("LOGIN_RATE_BURST", 5),
		APIKeys:               getEnvAsList("API_KEYS", nil),
		CORSAllowedOrigins:    getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		S3Endpoint:            getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:           os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:           os.Getenv("S3_SECRET_KEY"),
		S3UseSSL:              getEnvAsBool("S3_USE_SSL", false),
		S3Region:              getEnv("S3_REGION", "us-east-1"),
		ImageBucket:           getEnv("IMAGE_BUCKET", "billion-eyes-images"),
		ImagePublicBaseURL:    getEnv("IMAGE_PUBLIC_BASE_URL", "http://localhost:9000"),
		ObjectStoreTimeout:    getEnvAsDuration("OBJECT_STORE_TIMEOUT", 200*time.Millisecond),

		ObjectStoreTransferTimeout: getEnvAsDuration("OBJECT_STORE_TRANSFER_TIMEOUT", 30*time.Second),

		ImageCacheTTL:         getEnvAsDuration("IMAGE_CACHE_TTL", 10*time.Minute),
		ImageFetchWorkers:     getEnvAsInt("IMAGE_FETCH_CONCURRENCY", 8),
		MaxUploadBytes:        getEnvAsInt("MAX_UPLOAD_BYTES", 10<<20),
		DefaultActiveModel:    getEnv("DEFAULT_ACTIVE_MODEL", "YOLO"),
		ModelQueues:           getEnvAsMap("MODEL_QUEUES", map[string]string{"YOLO": "yolo_queue", "VLM": "vlm_queue"}),
		DetectionQueue:        getEnv("DETECTION_QUEUE", "detected_objects_queue"),
		WorkerMaxRetries:      getEnvAsInt("WORKER_MAX_RETRIES", 3),
		WorkerBaseDelay:       getEnvAsDuration("WORKER_BASE_DELAY", time.Second),
		DispatchRadiusMeters:  getEnvAsFloat("DISPATCH_RADIUS_METERS", 50000),
		DispatchMaxCandidates: getEnvAsInt("DISPATCH_MAX_CANDIDATES", 3),
		DedupWindow:           getEnvAsDuration("DEDUP_WINDOW", 2*time.Hour),
		DedupRadiusMeters:     getEnvAsFloat("DEDUP_RADIUS_METERS", 200),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// RedisAddrs возвращает адреса Redis в порядке попыток подключения без дубликатов
func (c *Config) RedisAddrs() []string {
	seen := make(map[string]struct{})
	addrs := make([]string, 0, len(c.RedisFallbackAddrs)+1)
	for _, addr := range append([]string{c.RedisAddr}, c.RedisFallbackAddrs...) {
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		addrs = append(addrs, addr)
	}
	return addrs
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает значение, разделённое запятыми
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getEnvAsMap разбирает пары вида KEY=value,KEY2=value2
func getEnvAsMap(key string, defaultValue map[string]string) map[string]string {
	items := getEnvAsList(key, nil)
	if len(items) == 0 {
		return defaultValue
	}
	result := make(map[string]string, len(items))
	for _, item := range items {
		k, v, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		result[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return result
}
