package main

import (
	"github.com/wordleague/wordleague/cmd"
)

func main() {
	cmd.Execute()
}
