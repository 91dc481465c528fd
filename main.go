// Package main is the entry point for the orfix CLI.
package main

import "github.com/sanddino/orfix/cmd"

func main() {
	cmd.Execute()
}
