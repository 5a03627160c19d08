package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
