package main

import (
	"log"

	"novel_shelf/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
