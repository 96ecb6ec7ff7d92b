package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/schedlayout/internal/cli/helpers"
	"github.com/coral-mesh/schedlayout/internal/config"
	"github.com/coral-mesh/schedlayout/internal/sched/rqoffsets"
)

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

type artifactFlags struct {
	output  string
	format  string
	pkg     string
	profile string
}

func (f *artifactFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.output, "output", "", "Artifact path, - for stdout (default from profile)")
	cmd.Flags().StringVar(&f.format, "format", "", "Artifact format: c or go (default from profile)")
	cmd.Flags().StringVar(&f.pkg, "package", "", "Go package clause for --format go")
	cmd.Flags().StringVar(&f.profile, "profile", "", "Build profile (YAML); the generator must be built with its tags")
}

// resolve merges the profile with explicitly set flags.
func (f *artifactFlags) resolve(cmd *cobra.Command, logFlags *helpers.LogFlags) (*config.Profile, error) {
	profile, err := config.LoadBuildProfile(f.profile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("output") {
		profile.Output.Path = f.output
	}
	if cmd.Flags().Changed("format") {
		profile.Output.Format = f.format
	}
	if cmd.Flags().Changed("package") {
		profile.Output.Package = f.pkg
	}
	if !cmd.Flags().Changed("log-level") && profile.Logging.Level != "" {
		logFlags.Level = profile.Logging.Level
	}
	if !cmd.Flags().Changed("log-pretty") {
		logFlags.Pretty = logFlags.Pretty || profile.Logging.Pretty
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

func newGenerateCmd(logFlags *helpers.LogFlags) *cobra.Command {
	flags := &artifactFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the run-queue offsets artifact",
		Long: `Compute the offsets of the published run-queue fields for the build
configuration this binary was compiled with and write them as named constants.

Under sched_muqss the artifact is written without any offsets.

Examples:
  schedlayout generate --output include/generated/rq-offsets.h
  schedlayout generate --format go --package rqlayout --output -
  schedlayout generate --profile schedlayout.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := flags.resolve(cmd, logFlags)
			if err != nil {
				return err
			}
			logger := logFlags.Logger(cmd, "generate")

			artifact, err := rqoffsets.Build()
			if err != nil {
				return fmt.Errorf("failed to build offsets: %w", err)
			}
			if artifact.Empty() {
				logger.Info().
					Str("scheduler", artifact.Config.Scheduler).
					Msg("alternate scheduler selected, no offsets published")
			}

			return writeArtifact(cmd, logger, profile.Output, artifact)
		},
	}
	flags.add(cmd)

	return cmd
}
