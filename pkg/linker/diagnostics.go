package linker

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrBadScript is the coarse condition for any malformed linker script:
// lexical errors, grammar errors, and unknown output formats alike. The
// human-readable detail travels through the diagnostic sink instead; any
// other error out of the script path is a resource condition and
// propagates verbatim.
var ErrBadScript = errors.New("bad linker script")

type Diagnostic struct {
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	return d.Path + ": " + d.Message
}

// DiagnosticSink collects failure detail. The linker core never prints;
// it reports here and returns a condition code.
type DiagnosticSink interface {
	Report(d Diagnostic)
}

// StderrSink is the driver's sink.
type StderrSink struct{}

func (StderrSink) Report(d Diagnostic) {
	fmt.Fprintf(os.Stderr, "stubld: %s\n", d)
}

// CollectingSink accumulates diagnostics, mainly for tests.
type CollectingSink struct {
	Diags []Diagnostic
}

func (s *CollectingSink) Report(d Diagnostic) {
	s.Diags = append(s.Diags, d)
}

func hexEscape(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		fmt.Fprintf(&sb, "\\x%02x", c)
	}
	return sb.String()
}
