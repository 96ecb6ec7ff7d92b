package rqoffsets

import "github.com/coral-mesh/schedlayout/internal/offsets"

// Name is the artifact name; it also derives the C include guard.
const Name = "rq-offsets"

// Build assembles the run-queue artifact for the configuration this binary was
// compiled with.
func Build() (*offsets.Artifact, error) {
	return offsets.Build(Name, offsets.CurrentConfig(), Entries())
}
