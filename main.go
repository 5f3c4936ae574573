package main

import "github.com/alexiusacademia/wellvol/cmd"

func main() {
	cmd.Execute()
}
