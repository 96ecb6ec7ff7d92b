package offsets

import (
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// Fingerprint hashes a configuration and its records. Two artifacts share a
// fingerprint only if they were produced for the same arch, scheduler, tags and
// layout.
func Fingerprint(cfg Config, records []Record) uint64 {
	var b strings.Builder
	b.WriteString("arch=")
	b.WriteString(cfg.Arch)
	b.WriteString("\nscheduler=")
	b.WriteString(cfg.Scheduler)
	b.WriteString("\ntags=")
	b.WriteString(strings.Join(cfg.Tags, ","))
	b.WriteByte('\n')
	for _, r := range records {
		b.WriteString(r.Symbol)
		b.WriteByte('=')
		b.WriteString(strconv.FormatUint(r.Value, 10))
		b.WriteByte(' ')
		b.WriteString(r.Struct)
		b.WriteByte('.')
		b.WriteString(r.Member)
		b.WriteByte('\n')
	}
	return xxh3.HashString(b.String())
}
