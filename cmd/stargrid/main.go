package main

import "github.com/stargrid/stargrid-go/internal/cli"

func main() {
	cli.Execute()
}
