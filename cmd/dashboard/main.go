package main

import (
	"os"

	"tod/internal/cli"
	"tod/pkg/config"
	apperrors "tod/pkg/errors"
)

func main() {
	root := cli.NewRootCommand(config.Load)
	if err := root.Execute(); err != nil {
		os.Exit(apperrors.Report(os.Stderr, err))
	}
}
