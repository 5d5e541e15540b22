package main

import (
	"os"

	"github.com/sokinpui/dirflat"
)

func main() {
	if err := dirflat.Execute(); err != nil {
		os.Exit(1)
	}
}
