package main

import "cparse/internal/cli"

func main() {
	cli.Execute()
}
