package main

import (
	"os"

	"github.com/docstore/docstore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
