package main

import "github.com/ashofman/cutplan/internal/cli"

func main() {
	cli.Main()
}
