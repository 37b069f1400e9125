// Package config — конфигурация сервиса из переменных окружения.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config — настройки HTTP-сервера, хранилища и внешнего сервиса скидок
type Config struct {
	HTTPAddr          string
	DatabaseURL       string
	DiscountAPIURL    string
	StatusCacheTTL    time.Duration
	HTTPClientTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

// Load собирает конфигурацию из окружения со значениями по умолчанию.
// Пустой DATABASE_URL переключает сервис на in-memory хранилище;
// пустой DISCOUNT_API_URL оставляет адрес сервиса скидок по умолчанию
func Load() Config {
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":9091"),
		DatabaseURL:       getenv("DATABASE_URL", ""),
		DiscountAPIURL:    getenv("DISCOUNT_API_URL", ""),
		StatusCacheTTL:    time.Duration(atoienv("STATUS_CACHE_TTL_MIN", 5)) * time.Minute,
		HTTPClientTimeout: durenvs("HTTP_CLIENT_TIMEOUT", 30),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT", 5),
	}
}
