package config

import (
	"os"
	"strconv"
	"time"
)

// Backend names accepted by POS_STORAGE.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMySQL = "mysql"
)

// Config is read once at startup from the environment.
type Config struct {
	Storage   string
	StateDir  string
	ExportDir string

	RedisAddr string
	MySQLDSN  string

	// Remote-sync settings carried over from the browser deployment.
	// Parsed and surfaced at startup; consumed by nothing yet.
	SheetsEndpoint string
	SheetsAPIKey   string
	SheetsTimeout  time.Duration
}

func Load() Config {
	return Config{
		Storage:        getenv("POS_STORAGE", BackendFile),
		StateDir:       getenv("POS_STATE_DIR", "./data"),
		ExportDir:      getenv("POS_EXPORT_DIR", "./exports"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		MySQLDSN:       getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/mitasai?parseTime=true"),
		SheetsEndpoint: os.Getenv("SHEETS_ENDPOINT"),
		SheetsAPIKey:   os.Getenv("SHEETS_API_KEY"),
		SheetsTimeout:  time.Duration(getenvInt("SHEETS_TIMEOUT_MS", 7000)) * time.Millisecond,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
