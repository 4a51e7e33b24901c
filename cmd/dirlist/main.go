package main

import (
	"os"

	"dirlist/cmd/dirlist/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
