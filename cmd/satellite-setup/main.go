package main

import (
	"fmt"
	"os"

	"github.com/nstrug/ansible-satellite6/internal/cmd"
)

func main() {
	if err := cmd.Setup(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
