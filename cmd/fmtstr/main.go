package main

import (
	"os"

	"github.com/gnolang/fmtstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
