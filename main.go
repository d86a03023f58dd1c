package main

import (
	"os"

	"github.com/ayumu/zukan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
