package main

import "github.com/alexhholmes/bitcheck/cmd/bitcheck/cmd"

func main() {
	cmd.Execute()
}
