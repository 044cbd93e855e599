// Package main provides the fraction CLI.
package main

import "github.com/mesh-intelligence/fraction/internal/cli"

func main() {
	cli.Execute()
}
