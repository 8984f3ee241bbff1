package main

import (
	"os"
)

// go build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
