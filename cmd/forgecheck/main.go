package main

import (
	"os"

	"github.com/forgebuild/forgecheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
