package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/wishplan/cmd/add"
	"fjacquet/wishplan/cmd/export"
	"fjacquet/wishplan/cmd/importfeed"
	"fjacquet/wishplan/cmd/list"
	"fjacquet/wishplan/cmd/plan"
	"fjacquet/wishplan/cmd/purchase"
	"fjacquet/wishplan/cmd/remove"
	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/cmd/summary"
	"fjacquet/wishplan/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	logLevel := configureLogLevelDirectly()

	// 3. Force this level on ALL existing and future loggers
	logging.SetAllLogLevels(logLevel)

	// 4. Now that logging is properly configured, initialize root command
	root.Init()

	// 5. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(plan.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(purchase.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(importfeed.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
// and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	// This must happen before any logging: it affects all existing and
	// future loggers.
	logrus.SetLevel(logLevel)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
