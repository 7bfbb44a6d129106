package main

import (
	"os"

	"github.com/bitfield/filelist/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
