package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/dupfind/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		if !errors.Is(err, cli.ErrRootMissing) {
			fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		}

		os.Exit(1)
	}
}
