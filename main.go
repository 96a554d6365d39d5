package main

import (
	"os"

	"github.com/typerush/typerush/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
