package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultEnv        = EnvLocal
	defaultLogLevel   = "info"
	defaultDataDir    = ".darak"
	defaultDBFile     = "journal.db"
	defaultServeAddr  = "localhost:8484"
	defaultBcryptCost = 10
)

type Config struct {
	Env        string `mapstructure:"app_env"`
	LogLevel   string `mapstructure:"log_level"`
	DataDir    string `mapstructure:"data_dir"`
	DBPath     string `mapstructure:"db_path"`
	TokenPath  string `mapstructure:"token_path"`
	ServeAddr  string `mapstructure:"serve_address"`
	BcryptCost int    `mapstructure:"bcrypt_cost"`
}

// MustLoad reads the environment (plus an optional .env file) and resolves
// all on-disk paths, creating the data directory if needed. Panics on an
// invalid configuration since nothing can run without one.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DATA_DIR", defaultDataDir)
	viper.SetDefault("SERVE_ADDRESS", defaultServeAddr)
	viper.SetDefault("BCRYPT_COST", defaultBcryptCost)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataDir := viper.GetString("DATA_DIR")
	if dataDir == defaultDataDir {
		dataDir = filepath.Join(homeDir, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dbPath := viper.GetString("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, defaultDBFile)
	}

	cfg := &Config{
		Env:        viper.GetString("APP_ENV"),
		LogLevel:   viper.GetString("LOG_LEVEL"),
		DataDir:    dataDir,
		DBPath:     dbPath,
		TokenPath:  filepath.Join(dataDir, "session"),
		ServeAddr:  viper.GetString("SERVE_ADDRESS"),
		BcryptCost: viper.GetInt("BCRYPT_COST"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.ServeAddr == "" {
		return fmt.Errorf("serve_address must not be empty")
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
