package main

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/erc7824/snip12/pkg/log"
)

const (
	configDirPathEnv     = "SNIP12_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Digest output formats accepted by SNIP12_DIGEST_FORMAT.
const (
	digestFormatHex     = "hex"     // canonical 0x form, no leading zeros
	digestFormatPadded  = "padded"  // 0x form padded to 32 bytes
	digestFormatDecimal = "decimal" // base-10 integer
)

// Config represents the overall tool configuration
type Config struct {
	// Account is the signer address message-hash falls back to when the
	// command line does not name one.
	Account string `env:"SNIP12_ACCOUNT"`
	// DigestFormat selects how computed digests are printed.
	DigestFormat string `env:"SNIP12_DIGEST_FORMAT" env-default:"hex"`
	Log          log.Config
}

// LoadConfig builds configuration from environment variables
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	// Load the .env file when one is present.
	configDotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(configDotEnvPath); err != nil {
		logger.Debug(".env file not found", "path", configDotEnvPath)
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		logger.Error("failed to read env", "error", err)
		return nil, err
	}

	switch config.DigestFormat {
	case digestFormatHex, digestFormatPadded, digestFormatDecimal:
	default:
		logger.Fatal("invalid SNIP12_DIGEST_FORMAT value", "value", config.DigestFormat)
	}

	return &config, nil
}
