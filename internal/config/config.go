package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // development/production

	DatabaseURL string // あればPOSTGRES_*より優先

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string
}

// Loadは環境変数から設定を読む。
func Load() (Config, error) {
	pgPort, err := atoiEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "warehouse"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}

	return cfg, nil
}

// DSN はgormに渡す接続文字列。DATABASE_URLがあればそれを使う。
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// Addr はHTTPサーバのリッスンアドレス。
func (c Config) Addr() string {
	if len(c.Port) > 0 && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
