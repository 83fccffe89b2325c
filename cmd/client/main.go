package main

import "oficina/cmd/client/cmd"

func main() {
	cmd.Execute()
}
