package main

import "cratescope/internal/cli"

func main() {
	cli.Execute()
}
