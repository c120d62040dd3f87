package main

import (
	"fmt"
	"os"
)

var (
	version   = "v0.1.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-version" {
		fmt.Printf("jsondiff %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(exitMatch)
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
