package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultStoreDriver   = "mongo"
	defaultMongoURI      = "mongodb://localhost:27017/food-delivery"
	defaultMongoDatabase = "food-delivery"
	defaultAppPort       = "5001"
	defaultAppEnv        = "local"
	defaultFrontendURL   = "*"
	defaultAPIURL        = "http://localhost:5001/api"
	defaultRateLimit     = 300
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load merges config/app.json and .env over the built-in defaults.
// Process environment variables always win over both files.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_ENV":               defaultAppEnv,
		"PORT":                  defaultAppPort,
		"STORE_DRIVER":          defaultStoreDriver,
		"MONGODB_URI":           defaultMongoURI,
		"MONGODB_DATABASE":      "",
		"FRONTEND_URL":          defaultFrontendURL,
		"REDIS_ADDR":            "",
		"REDIS_PASSWORD":        "",
		"RATE_LIMIT_PER_MINUTE": strconv.Itoa(defaultRateLimit),
		"LOG_MONGO":             "",
		"API_URL":               defaultAPIURL,
	}
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

func IsProduction() bool {
	switch strings.ToLower(AppEnv()) {
	case "production", "prod":
		return true
	}
	return false
}

// AppPort is the HTTP listen port. APP_PORT is honoured for older .env files.
func AppPort() string {
	_ = Load()
	if p := get("PORT", ""); p != "" {
		return p
	}
	return get("APP_PORT", defaultAppPort)
}

// StoreDriver selects the entity store backend: "mongo" or "memory".
func StoreDriver() string {
	_ = Load()

	driver := strings.ToLower(get("STORE_DRIVER", defaultStoreDriver))
	switch driver {
	case "mongo", "memory":
		return driver
	default:
		return defaultStoreDriver
	}
}

func MongoURI() string {
	_ = Load()
	return get("MONGODB_URI", defaultMongoURI)
}

// MongoDatabase returns MONGODB_DATABASE, falling back to the database
// named in the connection string path.
func MongoDatabase() string {
	_ = Load()

	if name := get("MONGODB_DATABASE", ""); name != "" {
		return name
	}
	return databaseFromURI(MongoURI())
}

func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultMongoDatabase
}

// FrontendURL is the single origin allowed by CORS ("*" allows any).
func FrontendURL() string {
	_ = Load()
	return get("FRONTEND_URL", defaultFrontendURL)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", "")
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func RateLimitPerMinute() int {
	return Int("RATE_LIMIT_PER_MINUTE", defaultRateLimit)
}

// LogToMongo reports whether log records are mirrored into MongoDB.
func LogToMongo() bool {
	return Bool("LOG_MONGO", false)
}

// APIURL is the base URL the admin client talks to.
func APIURL() string {
	_ = Load()
	return get("API_URL", defaultAPIURL)
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		var s string
		switch v := val.(type) {
		case string:
			s = v
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			s = strconv.FormatBool(v)
		default:
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	for key, value := range env {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(value)
	}

	return nil
}

func get(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Int reads key as an integer, returning fallback when unset or invalid.
func Int(key string, fallback int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

// Bool reads key as a boolean ("1", "true", "yes" are true).
func Bool(key string, fallback bool) bool {
	switch strings.ToLower(Get(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
