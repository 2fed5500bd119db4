package params

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/anyswap/ICP-AccountID/common"
	"github.com/anyswap/ICP-AccountID/log"
)

const (
	defaultVerbosity = 3 // warn
	defaultRotation  = 24
	defaultMaxAge    = 720
)

var accountIDConfig = NewDefaultConfig()

// Config config items (decode from toml file)
type Config struct {
	Log    *LogConfig
	Derive *DeriveConfig
}

// LogConfig log config
type LogConfig struct {
	Verbosity   uint32
	JSONFormat  bool
	ColorFormat bool
	LogFile     string `toml:",omitempty" json:",omitempty"`
	Rotation    uint64 // hours
	MaxAge      uint64 // hours
}

// DeriveConfig account id derivation config
type DeriveConfig struct {
	Subaccount     string `toml:",omitempty" json:",omitempty"` // hex
	StrictChecksum bool
}

// NewDefaultConfig config used when no config file is specified
func NewDefaultConfig() *Config {
	return &Config{
		Log: &LogConfig{
			Verbosity:   defaultVerbosity,
			ColorFormat: true,
			Rotation:    defaultRotation,
			MaxAge:      defaultMaxAge,
		},
		Derive: &DeriveConfig{},
	}
}

// GetConfig get config items
func GetConfig() *Config {
	return accountIDConfig
}

// SetConfig set config items
func SetConfig(config *Config) {
	accountIDConfig = config
}

// LoadConfig load config from toml file, missing sections keep their defaults
func LoadConfig(configFile string) (*Config, error) {
	config := NewDefaultConfig()
	if configFile == "" {
		SetConfig(config)
		return config, nil
	}
	log.Println("Config file is", configFile)
	if !common.FileExist(configFile) {
		return nil, fmt.Errorf("config file %v not exist", configFile)
	}
	if _, err := toml.DecodeFile(configFile, config); err != nil {
		return nil, fmt.Errorf("LoadConfig error (toml DecodeFile): %w", err)
	}
	if config.Log == nil {
		config.Log = NewDefaultConfig().Log
	}
	if config.Derive == nil {
		config.Derive = &DeriveConfig{}
	}
	if err := config.CheckConfig(); err != nil {
		return nil, fmt.Errorf("check config failed. %w", err)
	}
	SetConfig(config)

	var bs []byte
	if log.JSONFormat {
		bs, _ = json.Marshal(config)
	} else {
		bs, _ = json.MarshalIndent(config, "", "  ")
	}
	log.Debug("LoadConfig finished.", "config", string(bs))
	return config, nil
}
