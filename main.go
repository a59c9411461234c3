package main

import (
	"os"

	"github.com/jsalter/cmi5quest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
