package main

import "github.com/crillab/proptab/cli"

func main() {
	cli.Execute()
}
