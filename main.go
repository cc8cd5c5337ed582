package main

import "github.com/electr1fy0/noteboard/cli"

func main() {
	cli.Execute()
}
