// Package main is the entry point for the depgroups CLI application.
//
// The depgroups tool distributes a resolved dependency list across the
// dependency groups declared in an automated update-job config.
package main

import "github.com/ajxudir/depgroups/cmd"

// main initializes and runs the depgroups CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles the assign, groups, and version subcommands.
func main() {
	cmd.Execute()
}
