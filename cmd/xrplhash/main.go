package main

import "github.com/LeJamon/goXRPLhash/internal/cli"

func main() {
	cli.Execute()
}
