package main

import "eser/cmd/eser-cli/cmd"

func main() {
	cmd.Execute()
}
