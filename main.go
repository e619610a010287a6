// Package main is the entry point for the clonex CLI.
package main

import "clonex.dev/pkg/clonex/cmd"

func main() {
	cmd.Execute()
}
