// cmd/apt-world/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkgtools/apt-world/internal/cli"
	"github.com/pkgtools/apt-world/internal/logger"
)

func main() {
	slog.SetDefault(logger.New(os.Stderr))

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
