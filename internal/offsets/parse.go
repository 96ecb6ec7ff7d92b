package offsets

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	cDefineRe = regexp.MustCompile(`^#define\s+([A-Za-z_]\w*)\s+(\d+)(?:\s+/\*\s*offsetof\(struct\s+(\w+),\s*(\w+)\)\s*\*/)?\s*$`)
	goConstRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*(\d+)(?:\s*//\s*offsetof\(struct\s+(\w+),\s*(\w+)\))?\s*$`)
)

// Parse reads an artifact back from its rendered form. The fingerprint in the
// header must match the parsed contents, which catches hand edits.
func Parse(r io.Reader, f Format) (*Artifact, error) {
	var re *regexp.Regexp
	switch f {
	case FormatGo:
		re = goConstRe
	case FormatC:
		re = cDefineRe
	default:
		_, err := ParseFormat(string(f))
		return nil, err
	}

	a := &Artifact{}
	var (
		stated    uint64
		haveStamp bool
	)

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()

		if key, val, ok := headerField(text); ok {
			switch key {
			case "arch":
				a.Config.Arch = val
			case "scheduler":
				a.Config.Scheduler = val
			case "tags":
				if val != "none" {
					a.Config.Tags = strings.Fields(val)
				}
			case "fingerprint":
				fp, err := strconv.ParseUint(val, 0, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid fingerprint %q: %w", line, val, err)
				}
				stated, haveStamp = fp, true
			}
			continue
		}

		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value for %s: %w", line, m[1], err)
		}
		a.Records = append(a.Records, Record{Symbol: m[1], Value: v, Struct: m[3], Member: m[4]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	if !haveStamp {
		return nil, fmt.Errorf("artifact has no fingerprint header")
	}
	if got := a.Fingerprint(); got != stated {
		return nil, fmt.Errorf("artifact fingerprint %#016x does not match contents (%#016x)", stated, got)
	}
	return a, nil
}

// headerField extracts "key: value" from a Go or C header comment line.
func headerField(line string) (string, string, bool) {
	var body string
	switch {
	case strings.HasPrefix(line, "// "):
		body = line[3:]
	case strings.HasPrefix(line, " * "):
		body = line[3:]
	default:
		return "", "", false
	}
	key, val, ok := strings.Cut(body, ": ")
	if !ok {
		return "", "", false
	}
	switch key {
	case "arch", "scheduler", "tags", "fingerprint":
		return key, strings.TrimSpace(val), true
	}
	return "", "", false
}
