package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env      string
	HTTPAddr string
	JWTKey   string
	LogLevel string
	Database DatabaseConfig
	Redis    RedisConfig
	PokeAPI  PokeAPIConfig
	Tracing  TracingConfig
	Battle   BattleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type PokeAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

type BattleConfig struct {
	MaxOpponentID int
	OpponentDelay time.Duration
	ArenaTTL      time.Duration
}

func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		HTTPAddr: normalizeAddr(getEnv("HTTP_ADDR", ":8080")),
		JWTKey:   getEnv("JWT_KEY", "secret"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5433"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", "postgres"),
			Name:     getEnv("DATABASE_NAME", "pokedex"),
			SSLMode:  getEnv("DATABASE_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		PokeAPI: PokeAPIConfig{
			BaseURL: getEnv("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2/"),
			Timeout: getDuration("POKEAPI_TIMEOUT", 15*time.Second),
		},
		Tracing: TracingConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "pokedex"),
		},
		Battle: BattleConfig{
			MaxOpponentID: getInt("BATTLE_MAX_OPPONENT_ID", 898),
			OpponentDelay: getDuration("BATTLE_OPPONENT_DELAY", time.Second),
			ArenaTTL:      getDuration("BATTLE_ARENA_TTL", 2*time.Hour),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}
