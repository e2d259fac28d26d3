package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retagger/retag/cmd"
	"github.com/retagger/retag/internal/service"
)

func main() {
	if err := cmd.InitCommands(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize commands: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, service.ErrPromptAborted) {
			fmt.Fprintln(os.Stderr, "canceled by user")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
