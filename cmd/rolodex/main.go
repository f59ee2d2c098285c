package main

import "github.com/aalvaropc/rolodex/internal/cli"

func main() {
	cli.Execute()
}
