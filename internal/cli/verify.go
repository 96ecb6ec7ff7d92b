package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/schedlayout/internal/cli/helpers"
	"github.com/coral-mesh/schedlayout/internal/offsets"
	"github.com/coral-mesh/schedlayout/internal/sched/rqoffsets"
)

// errStaleArtifact is returned when an artifact no longer matches the build.
var errStaleArtifact = errors.New("artifact is stale")

func newVerifyCmd(logFlags *helpers.LogFlags) *cobra.Command {
	var (
		format string
		pkg    string
	)

	cmd := &cobra.Command{
		Use:   "verify <artifact>",
		Short: "Check that an artifact matches the current build",
		Long: `Regenerate the run-queue offsets in memory and compare them byte for byte
with an existing artifact. Any difference, including an artifact produced
under other build tags or for another architecture, fails the command.

The format is inferred from the file extension (.go for Go, anything else
for C) unless --format is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logFlags.Logger(cmd, "verify")
			path := args[0]

			if format == "" {
				format = string(offsets.FormatC)
				if filepath.Ext(path) == ".go" {
					format = string(offsets.FormatGo)
				}
			}
			f, err := offsets.ParseFormat(format)
			if err != nil {
				return err
			}

			//nolint:gosec // G304: Path is supplied by the build.
			existing, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read artifact: %w", err)
			}

			want, err := rqoffsets.Build()
			if err != nil {
				return fmt.Errorf("failed to build offsets: %w", err)
			}
			var buf bytes.Buffer
			if err := offsets.Render(&buf, want, offsets.Options{Format: f, Package: pkg}); err != nil {
				return err
			}

			if bytes.Equal(buf.Bytes(), existing) {
				logger.Info().Str("path", path).Int("records", len(want.Records)).Msg("artifact is up to date")
				return nil
			}

			got, err := offsets.Parse(bytes.NewReader(existing), f)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", errStaleArtifact, path, err)
			}
			if diff := offsets.Diff(want, got); diff != "" {
				cmd.PrintErrf("%s differs from the current build (-want +got):\n%s", path, diff)
			} else {
				cmd.PrintErrf("%s: offsets match the current build but the rendering differs "+
					"(package clause, comments or formatting); check --format and --package\n", path)
			}
			return fmt.Errorf("%w: %s, regenerate it with `schedlayout generate`", errStaleArtifact, path)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Artifact format: c or go")
	cmd.Flags().StringVar(&pkg, "package", "", "Go package clause the artifact was generated with")

	return cmd
}
