// Package obs — утилиты наблюдаемости сервиса.
package obs

import (
	"log/slog"
	"os"
)

// NewLogger создаёт структурированный JSON-логгер уровня info
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
