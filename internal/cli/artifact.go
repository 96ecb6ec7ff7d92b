package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coral-mesh/schedlayout/internal/config"
	"github.com/coral-mesh/schedlayout/internal/offsets"
)

func renderOptions(out config.OutputConfig) (offsets.Options, error) {
	format, err := offsets.ParseFormat(out.Format)
	if err != nil {
		return offsets.Options{}, err
	}
	return offsets.Options{Format: format, Package: out.Package}, nil
}

// writeArtifact renders a to the configured destination.
func writeArtifact(cmd *cobra.Command, logger zerolog.Logger, out config.OutputConfig, a *offsets.Artifact) error {
	opts, err := renderOptions(out)
	if err != nil {
		return err
	}

	if out.Path == stdoutPath {
		return offsets.Render(cmd.OutOrStdout(), a, opts)
	}
	if err := offsets.WriteFile(logger, out.Path, a, opts); err != nil {
		return err
	}

	logger.Info().
		Str("path", out.Path).
		Str("format", string(opts.Format)).
		Int("records", len(a.Records)).
		Str("tags", strings.Join(a.Config.Tags, ",")).
		Str("fingerprint", fmt.Sprintf("%016x", a.Fingerprint())).
		Msg("offsets artifact generated")
	return nil
}
