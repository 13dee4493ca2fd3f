package main

import "github.com/junioryono/beca/internal/cli"

func main() {
	cli.Execute()
}
