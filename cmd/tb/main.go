package main

import (
	"os"

	"github.com/bnema/teambuilder-cli/cmd"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
