package config

import "github.com/gofiber/fiber/v2/log"

var logLevels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":3000",
			AllowOrigins: []string{"http://localhost:5173"},
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		Terminal: TerminalConfig{
			Color:      true,
			ShowCoords: true,
		},
		LogLevel: "info",
	}
}

// Level maps the configured name onto fiber's logger levels.
func (c *Config) Level() log.Level {
	return logLevels[c.LogLevel]
}
