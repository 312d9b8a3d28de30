package main

import (
	"os"

	"github.com/erc7824/snip12/pkg/log"
)

func main() {
	logger := log.NewZapLogger(log.Config{}).WithName("snip12")

	if len(os.Args) < 2 {
		logger.Fatal("usage: snip12 <message-hash|struct-hash|type-hash|encoded-type> <document.json> [arguments]")
	}

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// Rebuild the logger with the configured format and level.
	logger = log.NewZapLogger(config.Log).WithName("snip12")

	runCli(logger, config, os.Args[1])
}

func runCli(logger log.Logger, config *Config, name string) {
	switch name {
	case "message-hash":
		runMessageHashCli(logger, config)
	case "struct-hash":
		runStructHashCli(logger, config)
	case "type-hash":
		runTypeHashCli(logger, config)
	case "encoded-type":
		runEncodedTypeCli(logger, config)
	default:
		logger.Fatal("unknown CLI command", "name", name)
	}
}
