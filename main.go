package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"paylist/cmd/generate"
	"paylist/cmd/root"
	"paylist/cmd/serve"
	"paylist/cmd/version"
)

func init() {
	// Load environment variables silently first (no logging yet); the
	// configured logger only exists after the root command resolves config.
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(version.Cmd)
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

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
