// Command askdoc answers questions against a local document library.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driving/cli"
)

func main() {
	// Load .env if present so OPENAI_API_KEY can live next to the project.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
