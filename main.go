package main

import (
	"github.com/ARU-life-sciences/clstr/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
