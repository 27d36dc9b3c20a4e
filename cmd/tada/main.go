package main

import (
	"os"

	"github.com/idilsaglam/tada/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stderr))
}
