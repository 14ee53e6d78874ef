package main

import (
	"os"

	"kanzanso-wellness-service/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
