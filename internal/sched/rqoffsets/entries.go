//go:build !sched_muqss

package rqoffsets

import (
	"reflect"
	"unsafe"

	"github.com/coral-mesh/schedlayout/internal/offsets"
	"github.com/coral-mesh/schedlayout/internal/sched"
)

// Entries lists the run-queue fields to publish.
func Entries() []offsets.Entry {
	rq := reflect.TypeFor[sched.RunQueue]()

	return []offsets.Entry{
		offsets.Offset("rq", "nr_pinned", rq, "NrPinned", unsafe.Offsetof(sched.RunQueue{}.NrPinned)),
	}
}
