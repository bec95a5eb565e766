package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"iforgor/internal/choose"
	"iforgor/internal/config"
	"iforgor/internal/interrupt"
	"iforgor/internal/logging"
	"iforgor/internal/registry"
	"iforgor/internal/runner"
	"iforgor/internal/store"
)

// Chooser shows the selection UI and returns the chosen keys
type Chooser func(ctx context.Context, opts choose.Options[string]) ([]string, error)

// App is the iforgor command line application
type App struct {
	// Choose defaults to the terminal chooser
	Choose Chooser
	// NewRunner builds the script runner once the config is known
	NewRunner func(cfg *config.Config) (runner.Runner, error)
	Guard     *interrupt.Guard

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	dataDir string
	cfg     *config.Config
	logs    io.Closer

	registry *store.OnDisk[registry.Registry]
	history  *store.OnDisk[registry.History]
}

// New creates an app reading prompts from in and printing to out. The guard
// may be nil.
func New(in io.Reader, out, errOut io.Writer, guard *interrupt.Guard) *App {
	a := &App{
		Choose: choose.Run[string],
		Guard:  guard,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
	a.NewRunner = func(cfg *config.Config) (runner.Runner, error) {
		return runner.New(cfg, a.Guard, runner.StdIO())
	}
	return a
}

// Execute runs the command line with args
func (a *App) Execute(ctx context.Context, args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	err := cmd.ExecuteContext(ctx)
	a.closeLogs()
	return err
}

// closeLogs stops logging to the log file, warning when it cannot be closed
func (a *App) closeLogs() {
	if a.logs == nil {
		return
	}
	logging.Discard()
	if err := a.logs.Close(); err != nil {
		fmt.Fprintf(a.errOut, "Warning: failed to close log file: %v\n", err)
	}
	a.logs = nil
}

// Command builds the cobra command tree
func (a *App) Command() *cobra.Command {
	var purgeAll, purgeHistory, registryPath bool

	root := &cobra.Command{
		Use:   "iforgor",
		Short: "The CLI tool for all those commands you forget about",
		Long: `iforgor keeps the shell snippets you keep forgetting in one searchable list.

Register source files listing your commands, then run iforgor without
arguments to search, pick and run one. An empty search shows the most
recently run commands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case registryPath:
				fmt.Fprintf(a.out, "Registry path: %s\n", a.cfg.RegistryPath())
				return nil
			case purgeAll:
				if err := a.purge(true); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "🗑️ Purged registry and history!")
				return nil
			case purgeHistory:
				if err := a.purge(false); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "🗑️ Purged history!")
				return nil
			}

			if err := a.open(); err != nil {
				return err
			}
			return a.launch(cmd.Context())
		},
	}

	root.Flags().BoolVar(&purgeAll, "purge-all", false, "reset the registry and the history, use it if the files are corrupted")
	root.Flags().BoolVar(&purgeHistory, "purge-history", false, "forget which commands were run")
	root.Flags().BoolVar(&registryPath, "registry-path", false, "print the registry file path and exit")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding the registry, history and config (default ~/.iforgor)")

	root.AddCommand(a.sourceCommand())
	root.AddCommand(a.reloadCommand())
	return root
}

// setup loads the configuration and starts logging
func (a *App) setup() error {
	dir, err := config.ResolveDataDir(a.dataDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logs, err := logging.Setup(cfg.LogFile, cfg.LogLevel, "iforgor")
	if err != nil {
		fmt.Fprintf(a.errOut, "Warning: %v\n", err)
	}
	a.logs = logs

	log.Debug("config loaded", "data_dir", cfg.DataDir, "runner", cfg.Runner)
	return nil
}

// open loads the registry and the history; missing files are empty
func (a *App) open() error {
	reg, err := store.OpenOrDefault[registry.Registry](a.cfg.RegistryPath())
	if err != nil {
		return fmt.Errorf("failed to open registry: %w", err)
	}
	hist, err := store.OpenOrDefault[registry.History](a.cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	a.registry = reg
	a.history = hist
	return nil
}

// save writes the registry and the history back
func (a *App) save() error {
	if err := a.registry.Save(); err != nil {
		return err
	}
	if err := a.history.Save(); err != nil {
		return err
	}
	log.Debug("registry saved", "sources", len(a.registry.Value.Sources), "commands", len(a.registry.Value.Commands))
	return nil
}

// purge overwrites the history, and the registry too when all is set,
// without reading them first
func (a *App) purge(all bool) error {
	if all {
		if err := store.New[registry.Registry](a.cfg.RegistryPath()).Save(); err != nil {
			return err
		}
	}
	return store.New[registry.History](a.cfg.HistoryPath()).Save()
}
