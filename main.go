// ABOUTME: Pressroom CLI - Entry point for the WordPress content tool server
// ABOUTME: Initializes CLI and routes commands
package main

import (
	"fmt"
	"os"

	"github.com/harper/pressroom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
