package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vinser/orbvault/internal/app"
	"github.com/vinser/orbvault/internal/flags"
)

func main() {
	if err := app.Run("orbvault", os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *flags.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
