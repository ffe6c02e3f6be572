// Package cli implements the mflowgen command-line interface.
//
// The CLI is a single-shot presentation tool: it loads one resolved step
// configuration, renders the ASCII diagram and parameter listing to stdout,
// and exits. All diagnostics and logs go to stderr so the stdout diagram
// stays byte-stable for diffing against regression baselines.
//
// # Logging
//
// The --verbose (-v) flag enables debug-level logging. Loggers are passed
// through context.Context to keep command wiring free of globals.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/allpan3/mflowgen/pkg/buildinfo"
)

// helpBanner is the static usage banner shown by --help. It is embedded
// here rather than derived from any file on disk.
const helpBanner = `mflowgen renders a resolved pipeline step as an ASCII diagram.

The diagram shows the step's declared input and output ports attached to a
bordered box, with connector stacks tracing each port's edges to the
neighboring steps that produce or consume its artifacts. A parameter, flag,
and source listing follows the diagram.

The step configuration is a .toml or .hcl file produced by the flow's graph
resolution stage.`

// Execute runs the mflowgen CLI and returns an error if the command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var (
		configPath string
		simple     bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "mflowgen",
		Short:         "mflowgen renders pipeline steps as ASCII diagrams",
		Long:          helpBanner,
		Version:       buildinfo.Version,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag validation has passed; usage output from here on would
			// bury the diagnostic for config-load failures.
			cmd.SilenceUsage = true
			return runShow(cmd.Context(), cmd.OutOrStdout(), configPath, simple)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&configPath, "config", "c", "", "step configuration file (.toml or .hcl)")
	root.Flags().BoolVar(&simple, "simple", false, "draw generic connectors without edge detail")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	cobra.CheckErr(root.MarkFlagRequired("config"))

	return root.ExecuteContext(ctx)
}
