package main

import (
	"os"

	"github.com/tahajib/reelsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
