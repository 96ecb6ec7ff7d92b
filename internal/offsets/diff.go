package offsets

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Diff reports differences between two artifacts' configuration and records.
// It returns an empty string when they agree.
func Diff(want, got *Artifact) string {
	type view struct {
		Config  Config
		Records []Record
	}
	return cmp.Diff(
		view{Config: want.Config, Records: want.Records},
		view{Config: got.Config, Records: got.Records},
		cmpopts.EquateEmpty(),
	)
}
