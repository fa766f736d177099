package main

import (
	"fmt"
	"os"

	"adoptar/cmd/adoptar"
)

func main() {
	// Execute root
	if err := adoptar.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
