package main

import (
	"os"

	"github.com/thenoetrevino/notely/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
