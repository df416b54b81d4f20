package main

import (
	"fmt"
	"os"

	"github.com/nstrug/ansible-satellite6/internal/inventory"
)

func main() {
	if err := inventory.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
