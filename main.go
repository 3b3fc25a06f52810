package main

import (
	"os"

	"github.com/todoscontam/finlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
