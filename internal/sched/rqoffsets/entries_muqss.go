//go:build sched_muqss

package rqoffsets

import "github.com/coral-mesh/schedlayout/internal/offsets"

// Entries is empty: the MuQSS run queue has an incompatible shape and no
// offsets are published for it.
func Entries() []offsets.Entry {
	return nil
}
