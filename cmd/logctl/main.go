package main

import (
	"os"

	"log-explorer-backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
