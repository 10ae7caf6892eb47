package main

import (
	"fmt"
	"os"

	"maka/internal/app"
)

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "maka:", err)
		os.Exit(1)
	}
}
