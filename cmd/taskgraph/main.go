package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "taskgraph: %v\n", err)
		os.Exit(1)
	}
}
