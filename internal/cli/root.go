// internal/cli/root.go
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	aptworld "github.com/pkgtools/apt-world"
	"github.com/pkgtools/apt-world/internal/logger"
	"github.com/pkgtools/apt-world/pkg/core"
	"github.com/pkgtools/apt-world/pkg/render"
	"github.com/pkgtools/apt-world/pkg/world"
)

var (
	cfgFile      string
	verbose      bool
	explicitOnly bool
	filterBase   bool
	statusFile   string
	statesFile   string
	namesOnly    bool
	noColor      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "apt-world",
	Short: "List packages explicitly installed by the user",
	Long: `apt-world - list packages explicitly installed by the user

Reads the dpkg status database and apt's extended_states file, works
out which installed packages a user asked for by name rather than apt
pulling them in as dependencies, and prints them sorted by name.

A package counts as manually installed when extended_states records
Auto-Installed: 0 for it, or records nothing for it at all.`,
	Args:          cobra.NoArgs,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() { logger.SetVerbose(verbose) })

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/apt-world/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().BoolVarP(&explicitOnly, "explicitly-manual", "e", false, "only list packages apt explicitly flagged as manual")
	rootCmd.Flags().BoolVarP(&filterBase, "filter-base", "b", false, "drop essential and base-priority packages")
	rootCmd.Flags().StringVar(&statusFile, "status-file", "", "dpkg status database to read")
	rootCmd.Flags().StringVar(&statesFile, "extended-states-file", "", "apt extended_states database to read")
	rootCmd.Flags().BoolVarP(&namesOnly, "names-only", "n", false, "print bare package names instead of a table")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Contradictory modes are rejected before any file is opened
	mode, err := world.ResolveMode(explicitOnly, filterBase)
	if err != nil {
		return err
	}

	cfg, err := core.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	// Flags override config
	if statusFile != "" {
		cfg.StatusFile = statusFile
	}
	if statesFile != "" {
		cfg.ExtendedStatesFile = statesFile
	}
	if noColor {
		cfg.NoColor = true
	}

	slog.Debug("classifying installed packages",
		"mode", mode.String(), "status", cfg.StatusFile, "states", cfg.ExtendedStatesFile)

	result, err := aptworld.Collect(aptworld.Options{
		StatusPath:     cfg.StatusFile,
		StatesPath:     cfg.ExtendedStatesFile,
		Mode:           mode,
		BasePriorities: cfg.BasePrioritySet(),
	})
	if err != nil {
		return err
	}

	rows := result.Rows()
	slog.Debug("classification finished", "installed", len(result.Records), "manual", len(rows))

	out := cmd.OutOrStdout()
	if namesOnly {
		fmt.Fprint(out, render.Names(rows))
		return nil
	}

	color := !cfg.NoColor && render.IsTerminal(out)
	fmt.Fprint(out, render.Table(rows, render.Options{Color: color}))
	return nil
}
