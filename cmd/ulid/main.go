package main

import (
	"os"

	"github.com/sortid/ulid/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
