package main

import (
	"context"
	"fmt"
	"os"

	"iforgor/internal/cli"
	"iforgor/internal/interrupt"
)

func main() {
	guard := interrupt.New()
	defer guard.Stop()

	app := cli.New(os.Stdin, os.Stdout, os.Stderr, guard)
	if err := app.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		guard.Stop()
		os.Exit(cli.ExitCode(err))
	}
}
