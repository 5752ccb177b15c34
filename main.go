package main

import "github.com/cargokit/editioncheck/cmd"

func main() {
	cmd.Execute()
}
