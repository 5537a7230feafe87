package main

import (
	"os"

	"github.com/IgorBayerl/garden-erp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
