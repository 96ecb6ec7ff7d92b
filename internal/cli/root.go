// Package cli implements the schedlayout command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/coral-mesh/schedlayout/internal/cli/helpers"
	"github.com/coral-mesh/schedlayout/pkg/version"
)

// NewRootCmd builds the schedlayout command tree.
func NewRootCmd() *cobra.Command {
	logFlags := &helpers.LogFlags{}

	rootCmd := &cobra.Command{
		Use:   "schedlayout",
		Short: "Publish scheduler structure layouts to external tools",
		Long: `schedlayout measures where fields sit inside the scheduler's run queue,
as laid out by the compiler for the current build configuration, and writes
those offsets as named integer constants for debuggers, memory inspectors and
tracers that cannot see the structure definitions.

Build configurations are selected with Go build tags:
  detect_hung_task   hung task detector tunables
  numa_balancing     NUMA balancing counters and tunables
  sched_cacule       CacULE scheduler patches
  sched_muqss        MuQSS run queue (no offsets are published)

The generator must be built with the same tags as the code it describes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	logFlags.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newGenerateCmd(logFlags))
	rootCmd.AddCommand(newVerifyCmd(logFlags))
	rootCmd.AddCommand(newBTFCmd(logFlags))
	rootCmd.AddCommand(newTunablesCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("schedlayout version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
			cmd.Printf("Build config: %s\n", version.BuildConfig())
		},
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
