package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/dexcam/internal/tui"
)

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

// current is the wired application, set by PersistentPreRunE.
var current *app

var rootCmd = &cobra.Command{
	Use:           "dexcam",
	Short:         "Capture photos with a Pokémon overlay",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations["skipApp"] == "true" {
			return nil
		}
		a, err := newApp(flagConfig)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current != nil {
			current.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// No TTY to draw on; fall back to the plain listing
			return runList(cmd, args)
		}
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/dexcam/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(capturesCmd)
}

func runTUI() error {
	bridge := tui.NewChannelBridge(8)
	screen := current.newScreen(bridge, bridge)
	model := tui.NewModel(current.catalog, screen, bridge)

	p := tea.NewProgram(model, tea.WithAltScreen())

	current.logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		current.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
