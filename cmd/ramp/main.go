package main

import (
	"fmt"
	"os"

	"github.com/go-drift/ramp/cmd/ramp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
