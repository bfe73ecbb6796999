package main

import "agencyhub/cmd/cli/command"

func main() {
	command.Execute()
}
