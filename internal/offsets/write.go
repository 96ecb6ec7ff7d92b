package offsets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	coralerrors "github.com/coral-mesh/schedlayout/internal/errors"
)

// WriteFile renders a to path. The artifact is rendered fully in memory and then
// renamed into place, so a failed generation leaves any previous file untouched
// and never leaves a truncated one behind.
func WriteFile(logger zerolog.Logger, path string, a *Artifact, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, a, opts); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	//nolint:gosec // G301: generated headers are read by other build steps.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary artifact: %w", err)
	}
	defer coralerrors.DeferRemove(logger, tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		coralerrors.DeferClose(logger, tmp, "failed to close temporary artifact")
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close artifact: %w", err)
	}
	//nolint:gosec // G302: generated headers are not sensitive.
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set artifact permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}

	logger.Debug().
		Str("path", path).
		Int("records", len(a.Records)).
		Msg("artifact written")
	return nil
}
