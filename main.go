package main

import (
	"os"

	"github.com/benchstash/benchstash/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
