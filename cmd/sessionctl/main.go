package main

import (
	"os"

	"github.com/jrsteele09/go-session-state/cmd/sessionctl/cmd"
	"github.com/jrsteele09/go-session-state/internal/config"
)

func main() {
	if err := cmd.NewRootCmd(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
