package main

import (
	"os"

	"github.com/0xChicharito/validate-gentx/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
