package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "hotseat-chess/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ServerConfig struct {
	Addr         string   `json:"addr"`
	AllowOrigins []string `json:"allow_origins"`
}

type WebSocketConfig struct {
	ReadBufferSize  int `json:"read_buffer_size"`
	WriteBufferSize int `json:"write_buffer_size"`
}

type TerminalConfig struct {
	Color      bool `json:"color"`
	ShowCoords bool `json:"show_coords"`
}

type Config struct {
	Server    ServerConfig    `json:"server"`
	WebSocket WebSocketConfig `json:"websocket"`
	Terminal  TerminalConfig  `json:"terminal"`
	LogLevel  string          `json:"log_level"`
}

// InitConfig loads the user's config file over DefaultConfig. A missing
// file is not an error.
func InitConfig() (*Config, error) {
	config := DefaultConfig()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func LoadFile(filePath string) (*Config, error) {
	config := DefaultConfig()
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &InvalidConfig{"server address must not be empty"}
	}
	for _, origin := range c.Server.AllowOrigins {
		if strings.TrimSpace(origin) == "*" {
			return &InvalidConfig{"allow_origins must not contain a wildcard when credentials are allowed"}
		}
	}
	if c.WebSocket.ReadBufferSize <= 0 || c.WebSocket.WriteBufferSize <= 0 {
		return &InvalidConfig{"websocket buffer sizes must be positive"}
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
