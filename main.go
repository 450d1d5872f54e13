// Package main is the entry point for the sw-checklist CLI.
package main

import "github.com/softwarewrighter/sw-checklist/cmd"

func main() {
	cmd.Execute()
}
