package main

import (
	"os"

	"github.com/docfoundry/wordstore/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
