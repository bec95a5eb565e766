package choose

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Run shows the chooser and blocks until the user confirms or cancels. It
// returns the selected keys in ascending order; an empty result means
// nothing was chosen.
//
// The frame is drawn on stderr and keys are read from the terminal device,
// so stdin and stdout stay free for the caller. The terminal is restored
// before Run returns, on success and on error.
func Run[K cmp.Ordered](ctx context.Context, opts Options[K]) ([]K, error) {
	return RunWith(ctx, opts, os.Stderr, tea.WithInputTTY())
}

// RunWith is Run with an explicit output and extra program options
func RunWith[K cmp.Ordered](ctx context.Context, opts Options[K], out io.Writer, progOpts ...tea.ProgramOption) ([]K, error) {
	model := NewModel(opts, lipgloss.NewRenderer(out, termenv.WithColorCache(true)))

	progOpts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	}, progOpts...)

	log.Debug("choose: starting session", "items", len(opts.Items), "multi", opts.MultiSelect)
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return nil, fmt.Errorf("choose: run session: %w", err)
	}

	selected := model.Selected()
	log.Debug("choose: session ended", "selected", len(selected))
	return selected, nil
}
