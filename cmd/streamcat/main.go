package main

import "github.com/jmgilman/go/streamio/internal/cli"

func main() {
	cli.Execute()
}
