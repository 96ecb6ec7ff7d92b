package offsets

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"unicode"
)

// Generator is the tool name written into artifact headers.
const Generator = "schedlayout"

// Format selects the artifact syntax.
type Format string

const (
	FormatGo Format = "go"
	FormatC  Format = "c"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatGo, FormatC:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported artifact format %q, must be one of: go, c", s)
	}
}

// Options controls rendering.
type Options struct {
	Format Format
	// Package is the Go package clause; derived from the artifact name when empty.
	Package string
}

// Render writes a in the requested format. Output depends only on the artifact,
// so rendering the same artifact twice yields identical bytes.
func Render(w io.Writer, a *Artifact, opts Options) error {
	var (
		out []byte
		err error
	)
	switch opts.Format {
	case FormatGo:
		pkg := opts.Package
		if pkg == "" {
			pkg = packageName(a.Name)
		}
		out, err = renderGo(a, pkg)
	case FormatC:
		out = renderC(a)
	default:
		_, err = ParseFormat(string(opts.Format))
	}
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

func headerLines(a *Artifact) []string {
	tags := "none"
	if len(a.Config.Tags) > 0 {
		tags = strings.Join(a.Config.Tags, " ")
	}
	return []string{
		"arch: " + a.Config.Arch,
		"scheduler: " + a.Config.Scheduler,
		"tags: " + tags,
		fmt.Sprintf("fingerprint: %#016x", a.Fingerprint()),
	}
}

func offsetofComment(r Record) string {
	return fmt.Sprintf("offsetof(struct %s, %s)", r.Struct, r.Member)
}

func renderGo(a *Artifact, pkg string) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by %s. DO NOT EDIT.\n//\n", Generator)
	for _, l := range headerLines(a) {
		fmt.Fprintf(&b, "// %s\n", l)
	}
	fmt.Fprintf(&b, "\npackage %s\n", pkg)

	if len(a.items) > 0 {
		b.WriteString("\nconst (\n")
		for _, it := range a.items {
			switch {
			case it.blank:
				b.WriteString("\n")
			case it.record < 0:
				fmt.Fprintf(&b, "\t// %s\n", it.comment)
			default:
				r := a.Records[it.record]
				fmt.Fprintf(&b, "\t%s = %d // %s\n", r.Symbol, r.Value, offsetofComment(r))
			}
		}
		b.WriteString(")\n")
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated Go source: %w", err)
	}
	return src, nil
}

func renderC(a *Artifact) []byte {
	guard := guardName(a.Name)

	var b bytes.Buffer
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n", guard, guard)
	b.WriteString("/*\n * DO NOT MODIFY.\n *\n")
	fmt.Fprintf(&b, " * This file was generated by %s\n *\n", Generator)
	for _, l := range headerLines(a) {
		fmt.Fprintf(&b, " * %s\n", l)
	}
	b.WriteString(" */\n\n")

	for _, it := range a.items {
		switch {
		case it.blank:
			b.WriteString("\n")
		case it.record < 0:
			fmt.Fprintf(&b, "/* %s */\n", it.comment)
		default:
			r := a.Records[it.record]
			fmt.Fprintf(&b, "#define %s %d /* %s */\n", r.Symbol, r.Value, offsetofComment(r))
		}
	}

	b.WriteString("\n#endif\n")
	return b.Bytes()
}

// guardName maps "rq-offsets" to "__RQ_OFFSETS_H__".
func guardName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, name)
	return "__" + mapped + "_H__"
}

// packageName maps "rq-offsets" to "rqoffsets".
func packageName(name string) string {
	pkg := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, name)
	if pkg == "" || unicode.IsDigit(rune(pkg[0])) {
		pkg = "offsets" + pkg
	}
	return pkg
}
