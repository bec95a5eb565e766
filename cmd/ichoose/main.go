package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"iforgor/internal/choose"
	"iforgor/internal/cli"
	"iforgor/internal/logging"
)

// Exit codes:
//
//	0 = at least one key chosen
//	1 = nothing chosen
//	2 = error (no terminal, bad input)
const (
	exitNothingChosen = 1
	exitError         = 2
)

var errNoTerminal = errors.New("stderr is not a terminal")

type options struct {
	title string
	text  string
	multi bool
}

// chooseFunc is the chooser used by the command, replaced in tests
type chooseFunc func(ctx context.Context, opts choose.Options[string]) ([]string, error)

func main() {
	os.Exit(run())
}

// run is separated from main so deferred calls run before exiting
func run() int {
	if path := os.Getenv("ICHOOSE_LOG"); path != "" {
		if logs, err := logging.Setup(path, "debug", "ichoose"); err == nil {
			defer logs.Close()
		}
	} else {
		logging.Discard()
	}

	cmd := newCommand(os.Stdin, os.Stdout, isTerminal, choose.Run[string])
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		// flag parsing errors
		fmt.Fprintf(os.Stderr, "ichoose: %v\n", err)
		return exitError
	}
	if exitErr.Err != nil {
		fmt.Fprintf(os.Stderr, "ichoose: %v\n", exitErr.Err)
	}
	return exitErr.Code
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func newCommand(in io.Reader, out io.Writer, terminal func() bool, chooser chooseFunc) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ichoose",
		Short: "Pick entries from a list read on stdin",
		Long: `ichoose reads choices from stdin, one per line, formatted as "ID @ NAME",
lets you search and pick among them, and prints the chosen IDs on stdout.

Keys are read from the terminal and the list is drawn on stderr, so
ichoose can sit in the middle of a pipeline. It exits with status 1 when
nothing was chosen.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !terminal() {
				return &cli.ExitError{Code: exitError, Err: errNoTerminal}
			}

			items, err := parseEntries(in)
			if err != nil {
				return &cli.ExitError{Code: exitError, Err: err}
			}

			keys, err := chooser(cmd.Context(), choose.Options[string]{
				Title:       " " + opts.title + " ",
				Text:        opts.text,
				MultiSelect: opts.multi,
				Items:       items,
			})
			if err != nil {
				return &cli.ExitError{Code: exitError, Err: err}
			}
			if len(keys) == 0 {
				return &cli.ExitError{Code: exitNothingChosen}
			}

			for _, key := range keys {
				fmt.Fprintln(out, key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "ichoose", "title shown on the frame")
	cmd.Flags().StringVar(&opts.text, "text", "", "help text shown under the list")
	cmd.Flags().BoolVar(&opts.multi, "multi", false, "allow selecting several entries")
	return cmd
}
