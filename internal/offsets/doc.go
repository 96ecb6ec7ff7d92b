// Package offsets turns compiler-computed field offsets into a generated artifact.
//
// Callers describe the fields they need with Offset, passing the value of
// unsafe.Offsetof for the field so the compiler, not this package, decides the
// layout. Build checks each value against an independent reflection probe,
// rejects duplicates, and produces an Artifact that renders deterministically as
// either Go constants or a C header:
//
//	entries := []offsets.Entry{
//		offsets.Offset("rq", "nr_pinned",
//			reflect.TypeFor[sched.RunQueue](), "NrPinned",
//			unsafe.Offsetof(sched.RunQueue{}.NrPinned)),
//	}
//	a, err := offsets.Build("rq-offsets", offsets.CurrentConfig(), entries)
//
// Any error means no artifact. A partial artifact is never produced.
package offsets
