package main

import (
	"os"

	"github.com/teemow/gdrive/cmd"
)

// version will be set by goreleaser during build
var version = "dev"

func main() {
	cmd.SetVersion(version)

	os.Exit(cmd.Execute())
}
