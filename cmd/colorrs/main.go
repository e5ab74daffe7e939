package main

import "github.com/colorrs/colorrs/internal/cli"

func main() {
	cli.Execute()
}
