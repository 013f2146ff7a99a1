package main

import (
	"os"

	"github.com/krystianch/tmpshift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
