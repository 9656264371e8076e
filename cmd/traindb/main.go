package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dkovalov/traindb/internal/cli"
)

func main() {
	// Optional .env in the working directory (TRAINDB_DB etc.).
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
