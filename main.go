package main

import "github.com/kozaktomas/card-grid/cmd"

func main() {
	cmd.Execute()
}
