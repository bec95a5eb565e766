package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"iforgor/internal/registry"
)

func (a *App) sourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "Manage the files commands are loaded from",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <path>",
		Short: "Register a source file and load its commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}

			path, err := registry.Canonical(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Adding source %q\n", path)

			added, err := a.registry.Value.AddSource(path)
			if err != nil {
				return err
			}
			a.printLoaded(path, added)
			return a.save()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered sources",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.open(); err != nil {
				return err
			}
			for _, path := range a.registry.Value.Sources {
				fmt.Fprintln(a.out, path)
			}
			return a.save()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <path>",
		Short: "Unregister a source file",
		Long: `Unregister a source file. The path may no longer exist on disk.

Commands loaded from the source stay registered until the next reload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}

			removed, err := a.registry.Value.RemoveSource(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Removed source %q\n", removed)
			fmt.Fprintln(a.out, "Commands in that source are still registered. Run `iforgor reload` to reload commands from remaining sources only")
			return a.save()
		},
	})

	return cmd
}

func (a *App) reloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload commands from all registered sources",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if err := a.registry.Value.Reload(a.printLoaded); err != nil {
				return err
			}
			return a.save()
		},
	}
}

func (a *App) printLoaded(path string, added []registry.UserCommand) {
	fmt.Fprintf(a.out, "Loading source: %s\n", path)
	for _, cmd := range added {
		fmt.Fprintf(a.out, "- Added command: %s\n", cmd.Name)
	}
}
