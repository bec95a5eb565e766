package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"iforgor/internal/choose"
	"iforgor/internal/interrupt"
	"iforgor/internal/registry"
)

const (
	launcherTitle = " iforgor "
	launcherHelp  = "Run `iforgor help` to learn about subcommands. " +
		"Search for multiple search terms by separating them with commas `,` " +
		"Empty search displays history, type anything (including spaces) to " +
		"display the filtered full list of commands."
	separator = "━━━━━━━━━━━━━━━"
)

// launch shows the chooser until the user quits, running the chosen command
// each time
func (a *App) launch(ctx context.Context) error {
	run, err := a.NewRunner(a.cfg)
	if err != nil {
		return err
	}

	for {
		reg := &a.registry.Value
		choices, err := a.showChooser(ctx, choose.Options[string]{
			Title:       launcherTitle,
			Text:        launcherHelp,
			Items:       reg.Entries(),
			DefaultList: a.history.Value.Entries(reg),
		})
		if err != nil {
			return err
		}

		if len(choices) == 0 {
			return nil
		}
		if len(choices) > 1 {
			return fmt.Errorf("%w, got %d", ErrMultipleChoices, len(choices))
		}

		cmd, err := reg.Lookup(choices[0])
		if err != nil {
			return err
		}
		a.history.Value.Touch(choices[0], a.cfg.HistoryLimit)
		if err := a.history.Save(); err != nil {
			return err
		}

		args, err := a.promptArgs(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "💭 Running %q\n\n", cmd.Name)
		log.Info("running command", "name", cmd.Name, "id", choices[0])
		status, err := run.Run(ctx, cmd.Script, args)
		if err != nil {
			return err
		}

		if status.Signaled {
			fmt.Fprint(a.out, "\n🏁 Execution terminated by signal, press Enter to proceed.")
		} else {
			fmt.Fprintf(a.out, "\n🏁 Execution complete with code %d, press Enter to proceed.", status.Code)
		}
		log.Info("command finished", "name", cmd.Name, "code", status.Code, "signaled", status.Signaled)

		// a Ctrl+C meant for a script that just finished must not kill us
		if err := a.pause(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, separator)
	}
}

// showChooser shows the chooser with interrupts ignored. The chooser gets the
// interrupt itself and returns an error once the terminal is restored.
func (a *App) showChooser(ctx context.Context, opts choose.Options[string]) ([]string, error) {
	if a.Guard != nil {
		restore := a.Guard.Enter(interrupt.Ignore)
		defer restore()
	}
	return a.Choose(ctx, opts)
}

// promptArgs asks a value for each declared argument of cmd
func (a *App) promptArgs(cmd registry.UserCommand) ([]string, error) {
	if len(cmd.Args) == 0 {
		return nil, nil
	}

	fmt.Fprintln(a.out, "This script requires the following arguments (use Ctrl+C to abort execution):")
	values := make([]string, 0, len(cmd.Args))
	for _, arg := range cmd.Args {
		fmt.Fprintf(a.out, "- %s: ", arg)
		value, err := a.readLine()
		if err != nil {
			return nil, fmt.Errorf("failed to read argument %q: %w", arg, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// pause waits for Enter with interrupts ignored. End of input counts as
// Enter.
func (a *App) pause() error {
	if a.Guard != nil {
		restore := a.Guard.Enter(interrupt.Ignore)
		defer restore()
	}

	_, err := a.readLine()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(a.out)
		return nil
	}
	return err
}

// readLine reads one line without its line ending. A last line without a
// newline is returned as is; io.EOF is returned only when nothing was read.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
