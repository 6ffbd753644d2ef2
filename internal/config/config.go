package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TMDB struct {
	BaseURL string
	APIKey  string
	// Language is the locale for upstream titles/overviews, not the
	// original-language filter.
	Language string
}

type Auth struct {
	SessionTTL time.Duration
}

type Suggest struct {
	IdleDelay time.Duration
	Limit     int
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	TMDB     TMDB
	Auth     Auth
	Suggest  Suggest
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		TMDB:     *newTMDB(),
		Auth:     *newAuth(),
		Suggest:  *newSuggest(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "cinematch"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		BaseURL:  getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		APIKey:   getenv("TMDB_API_KEY", ""),
		Language: getenv("TMDB_LANGUAGE", "de-DE"),
	}
}

func newAuth() *Auth {
	return &Auth{
		SessionTTL: getenvDuration("SESSION_TTL", 24*time.Hour),
	}
}

func newSuggest() *Suggest {
	return &Suggest{
		IdleDelay: getenvDuration("SUGGEST_IDLE_DELAY", 300*time.Millisecond),
		Limit:     getenvInt("SUGGEST_LIMIT", 5),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("%s invalid %s=%q, using default %s", logtag, key, val, defaultValue)
		return defaultValue
	}
	return d
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s invalid %s=%q, using default %d", logtag, key, val, defaultValue)
		return defaultValue
	}
	return n
}
