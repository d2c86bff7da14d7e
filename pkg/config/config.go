package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Data        DataConfig
	Recommender RecommenderConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// DataConfig points at the directory holding the pre-loaded CSV datasets
// (clients.csv, transactions.csv, actions.csv and optionally
// uplift_predictions.csv).
type DataConfig struct {
	Dir            string
	PreloadOnStart bool
}

// RecommenderConfig carries the similarity weights and the seed deduplication
// switch so they can be tuned per deployment instead of living as package
// constants.
type RecommenderConfig struct {
	WeightSameCountry     int
	WeightSameNationality int
	WeightSameCity        int
	WeightSameGender      int
	DedupeSeeds           bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Client Compass API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "client_compass"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Data: DataConfig{
			Dir:            getEnv("DATA_DIR", "data"),
			PreloadOnStart: getEnvBool("DATA_PRELOAD_ON_START", true),
		},
		Recommender: RecommenderConfig{
			WeightSameCountry:     getEnvInt("RECO_WEIGHT_SAME_COUNTRY", 1),
			WeightSameNationality: getEnvInt("RECO_WEIGHT_SAME_NATIONALITY", 3),
			WeightSameCity:        getEnvInt("RECO_WEIGHT_SAME_CITY", 5),
			WeightSameGender:      getEnvInt("RECO_WEIGHT_SAME_GENDER", 3),
			DedupeSeeds:           getEnvBool("RECO_DEDUPE_SEEDS", false),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}

	return b
}
