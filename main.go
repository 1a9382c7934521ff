package main

import (
	"os"

	"github.com/songbird-data/fixturectl/cmd"
	"github.com/songbird-data/fixturectl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
