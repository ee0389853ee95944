package main

import (
	"os"

	"github.com/vipcxj/numeral/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
